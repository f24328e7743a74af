package course

// DefaultModules is the built-in course content, used whenever modules.json is
// missing or fails validation.
var DefaultModules = []Module{
	{
		ID:          1,
		Title:       "Introduction to Data Science in India",
		Description: "Understanding the Data Science landscape in the Indian job market",
		Content: `Data Science has emerged as one of the most in-demand careers in India, with cities like Bangalore, Hyderabad, Pune, and Mumbai becoming major tech hubs. According to NASSCOM reports, India needs over 1.5 lakh data science professionals by 2025.

Key Topics:
• The Indian IT ecosystem and Data Science opportunities
• Major companies hiring: TCS, Infosys, Wipro, Amazon, Flipkart, Ola, Paytm
• Salary ranges: Entry-level (₹4-8 LPA), Mid-level (₹10-20 LPA), Senior (₹25+ LPA)
• Essential skills: Python, R, SQL, Machine Learning, Statistics
• Indian-specific datasets: Census data, Aadhaar, UPI transaction data
• Government initiatives: Digital India, NITI Aayog AI programs

Case Study: How Flipkart uses Data Science
Flipkart, India's leading e-commerce platform, employs thousands of data scientists to:
- Predict product demand during festivals like Diwali and Big Billion Days
- Optimize delivery routes across 19,000+ pin codes
- Personalize recommendations for 350+ million customers
- Detect fraud in transactions
- Dynamic pricing strategies

Career Path in India:
1. Start with foundational courses and certifications
2. Build portfolio with Indian context projects (IPL analysis, stock market prediction)
3. Participate in hackathons (Kaggle, Analytics Vidhya, HackerEarth)
4. Network through meetups in metro cities
5. Target startups and MNCs with data science divisions`,
		Duration: "15 mins",
	},
	{
		ID:          2,
		Title:       "Python for Data Science",
		Description: "Master Python programming essentials for data analysis",
		Content: `Python is the most preferred programming language for Data Science in India, with 80% of job postings requiring Python skills.

Core Python Concepts:
• Variables and Data Types (int, float, str, list, dict, tuple)
• Control Flow: if-else, loops (for, while)
• Functions and Lambda expressions
• List comprehensions
• File handling and CSV operations

Essential Libraries:
1. NumPy - Numerical computing
   - Arrays and matrices
   - Mathematical operations
   - Linear algebra

2. Pandas - Data manipulation
   - DataFrames and Series
   - Reading CSV, Excel files
   - Data cleaning and preprocessing
   - GroupBy operations

3. Matplotlib & Seaborn - Data visualization
   - Line plots, bar charts, histograms
   - Scatter plots and heatmaps
   - Customizing plots

Practical Example: Analyzing Mumbai Local Train Data
import pandas as pd
import matplotlib.pyplot as plt

# Load railway passenger data
df = pd.read_csv('mumbai_local_data.csv')

# Find peak hours
peak_hours = df.groupby('hour')['passengers'].mean()
peak_hours.plot(kind='bar')
plt.title('Average Passengers by Hour - Mumbai Local')
plt.xlabel('Hour of Day')
plt.ylabel('Number of Passengers')
plt.show()

Indian Context Projects:
- Cricket IPL score prediction
- Analyzing Indian stock market (NSE/BSE) data
- Predicting agricultural yield based on monsoon patterns
- Delhi air quality index forecasting
- E-commerce sales analysis during festival seasons`,
		Duration: "20 mins",
	},
	{
		ID:          3,
		Title:       "Statistics and Probability Fundamentals",
		Description: "Statistical concepts essential for data analysis and ML",
		Content: `Statistics forms the backbone of Data Science. Understanding statistical concepts is crucial for interpreting data correctly and building reliable ML models.

Descriptive Statistics:
• Mean, Median, Mode - Measures of central tendency
• Standard Deviation and Variance - Measures of spread
• Percentiles and Quartiles
• Skewness and Kurtosis

Probability Basics:
• Probability distributions: Normal, Binomial, Poisson
• Conditional probability and Bayes' Theorem
• Expected value and variance
• Law of large numbers

Inferential Statistics:
• Hypothesis testing (Null vs Alternative hypothesis)
• p-value and significance level (α = 0.05)
• Confidence intervals
• t-tests, chi-square tests, ANOVA

Correlation and Causation:
• Pearson and Spearman correlation
• Understanding causation vs correlation
• Multicollinearity in datasets

Indian Context Example: Agricultural Data Analysis
Scenario: Analyzing crop yield across Indian states

Dataset: Wheat production data from Punjab, Haryana, UP, MP
Variables:
- Rainfall (mm)
- Temperature (°C)
- Fertilizer usage (kg/hectare)
- Yield (quintals/hectare)

Analysis:
1. Calculate mean yield per state
2. Find correlation between rainfall and yield
3. Test hypothesis: "Fertilizer usage significantly impacts yield"
4. Create confidence intervals for yield predictions

Real-world Application:
- Exit polls prediction during Indian elections
- A/B testing for Swiggy/Zomato app features
- Quality control in manufacturing (automotive sector)
- Insurance claim analysis for Indian insurance companies
- Bank loan default probability calculations`,
		Duration: "25 mins",
	},
	{
		ID:          4,
		Title:       "Machine Learning Fundamentals",
		Description: "Core ML algorithms and their applications in Indian context",
		Content: `Machine Learning is transforming industries across India - from agriculture to healthcare, finance to e-commerce.

Types of Machine Learning:
1. Supervised Learning
   - Classification: Spam detection, disease diagnosis
   - Regression: Price prediction, sales forecasting

2. Unsupervised Learning
   - Clustering: Customer segmentation
   - Dimensionality reduction: PCA

3. Reinforcement Learning
   - Gaming, robotics, autonomous systems

Key Algorithms:

Linear Regression:
- Predicting house prices in metros (Mumbai, Delhi, Bangalore)
- Forecasting stock prices on NSE/BSE
- Estimating cab fares (Ola, Uber)

Logistic Regression:
- Credit card fraud detection
- Email spam classification
- Customer churn prediction for telecom (Airtel, Jio)

Decision Trees and Random Forest:
- Loan approval systems in Indian banks
- Customer segmentation for e-commerce
- Crop recommendation based on soil and climate

K-Means Clustering:
- Grouping customers by buying behavior
- Segmenting cities by development index
- Categorizing products for inventory management

Support Vector Machines (SVM):
- Handwriting recognition (Indian languages)
- Image classification
- Medical diagnosis

Indian Industry Applications:

1. Agriculture:
   - Crop yield prediction using weather data
   - Pest detection using image recognition
   - Soil health monitoring

2. E-commerce (Amazon, Flipkart):
   - Product recommendation engines
   - Demand forecasting for Big Billion Days
   - Price optimization

3. FinTech (Paytm, PhonePe):
   - Fraud detection in UPI transactions
   - Credit scoring for micro-loans
   - Personalized financial advice

4. Healthcare:
   - Disease prediction and diagnosis
   - Drug discovery
   - Patient risk assessment

Model Evaluation:
- Train-test split (80-20 rule)
- Cross-validation
- Metrics: Accuracy, Precision, Recall, F1-Score, ROC-AUC
- Confusion Matrix`,
		Duration: "30 mins",
	},
	{
		ID:          5,
		Title:       "Deep Learning and Neural Networks",
		Description: "Introduction to AI, neural networks, and deep learning applications",
		Content: `Deep Learning is powering the next generation of AI applications in India, from smart cities to personalized healthcare.

Neural Networks Basics:
• Neurons and layers (Input, Hidden, Output)
• Activation functions: ReLU, Sigmoid, Tanh, Softmax
• Forward propagation
• Backpropagation and gradient descent
• Loss functions: MSE, Cross-entropy

Deep Learning Frameworks:
1. TensorFlow (Google)
2. PyTorch (Facebook/Meta)
3. Keras (High-level API)

Types of Neural Networks:

1. Artificial Neural Networks (ANN)
   - Fully connected layers
   - Used for: Structured data, classification, regression

2. Convolutional Neural Networks (CNN)
   - Image recognition and computer vision
   - Architecture: Conv layers, Pooling, Fully connected
   - Applications: Face recognition, object detection

3. Recurrent Neural Networks (RNN)
   - Sequential data processing
   - LSTM and GRU for handling long-term dependencies
   - Applications: Time series, text generation, speech recognition

4. Transformers and Attention Mechanisms
   - BERT, GPT models
   - Natural Language Processing
   - Translation, summarization, chatbots

Indian Context Applications:

1. Language and NLP:
   - Multilingual chatbots (Hindi, Tamil, Telugu, Bengali, etc.)
   - Translation services for Indian languages
   - Sentiment analysis of regional language social media
   - Voice assistants in local languages

2. Computer Vision:
   - Aadhaar-based face verification systems
   - Traffic monitoring in smart cities (Pune, Surat)
   - Agricultural drone imagery analysis
   - Automatic number plate recognition (ANPR)

3. Finance:
   - Algorithmic trading on Indian stock exchanges
   - Fraud detection in UPI/IMPS transactions
   - Signature verification for banking

4. Healthcare:
   - X-ray and CT scan analysis
   - Diabetic retinopathy detection
   - Predicting disease outbreaks
   - Drug molecule discovery

5. E-commerce:
   - Visual search (upload image, find similar products)
   - Chatbots for customer service
   - Product quality inspection

Real Projects in India:
- NITI Aayog's AI for All initiative
- Microsoft's AI for Agriculture program
- Google's AI for Social Good projects
- IIT research labs working on AI solutions
- Startups: Haptik (chatbots), SigTuple (healthcare AI), Niramai (breast cancer detection)

Getting Started:
1. Learn Python and basic ML first
2. Understand mathematics: Linear algebra, calculus
3. Start with Keras for quick prototyping
4. Practice on Google Colab (free GPU access)
5. Participate in AI hackathons`,
		Duration: "30 mins",
	},
	{
		ID:          6,
		Title:       "Career Roadmap and Certification Prep",
		Description: "Building your Data Science career in India - from learning to landing jobs",
		Content: `A comprehensive guide to building a successful Data Science career in the Indian job market.

Learning Roadmap (6-12 months):

Month 1-2: Foundations
- Python programming
- SQL databases
- Git and version control
- Basic statistics

Month 3-4: Data Analysis
- NumPy, Pandas, Matplotlib
- Exploratory Data Analysis (EDA)
- Data cleaning and preprocessing
- Excel and PowerBI/Tableau

Month 5-6: Machine Learning
- Supervised learning algorithms
- Unsupervised learning
- Model evaluation and tuning
- Scikit-learn library

Month 7-8: Advanced Topics
- Deep Learning basics
- NLP or Computer Vision (choose one)
- Big Data tools (Hadoop, Spark) - optional
- Cloud platforms (AWS, Azure, GCP)

Month 9-12: Projects and Job Prep
- Build 3-5 portfolio projects
- Contribute to open source
- Practice on Kaggle, Analytics Vidhya
- Interview preparation

Certifications valued in India:
1. Google Data Analytics Professional Certificate
2. IBM Data Science Professional Certificate
3. Microsoft Certified: Azure Data Scientist Associate
4. AWS Certified Machine Learning - Specialty
5. Analytics Vidhya Certified Programs
6. Indian Institute of Technology (IIT) certifications via NPTEL

Building Portfolio:
Project Ideas with Indian Context:
1. IPL match winner prediction
2. Stock market analysis (Nifty 50 stocks)
3. House price prediction (Mumbai/Bangalore/Delhi)
4. Customer churn analysis for telecom
5. Loan default prediction
6. E-commerce product recommendation system
7. Traffic prediction for metro cities
8. Crop yield forecasting
9. Social media sentiment analysis (Twitter/Instagram)
10. COVID-19 data analysis for Indian states

Job Search Strategy:

1. Online Platforms:
   - Naukri.com, LinkedIn, Indeed
   - AngelList (for startups)
   - Company career pages
   - Referrals through networking

2. Target Companies:
   - MNCs: Google, Microsoft, Amazon, Adobe, Oracle
   - Product Companies: Flipkart, Swiggy, Ola, Paytm, CRED
   - Consulting: Deloitte, PwC, EY, Accenture
   - Indian IT: TCS, Infosys, Wipro (analytics divisions)
   - Startups: Check Inc42, YourStory for growing companies

3. Prepare for Interviews:
   - Technical: SQL queries, Python coding, ML algorithms
   - Case studies: Business problem-solving
   - Statistics and probability questions
   - Past projects discussion
   - Domain knowledge (finance, healthcare, e-commerce)

4. Resume Tips:
   - Highlight projects with metrics (improved accuracy by X%)
   - Mention relevant coursework and certifications
   - Include internships and hackathon participations
   - Keywords: Python, Machine Learning, Deep Learning, SQL, etc.
   - Keep it to 1-2 pages

Salary Expectations (2024):
- Fresher (0-1 year): ₹3-6 LPA
- Junior DS (1-3 years): ₹6-12 LPA
- Senior DS (3-5 years): ₹12-25 LPA
- Lead DS (5+ years): ₹25-50 LPA
- Principal/Director: ₹50+ LPA

*Salaries vary by company, location, and skills

Networking and Community:
- Join Data Science meetups in your city
- LinkedIn networking and content creation
- Twitter (follow Indian DS professionals)
- Analytics Vidhya, DataHack Summit
- PyData conferences
- College alumni networks

Continuous Learning:
- Follow industry blogs and papers
- Take advanced courses as needed
- Stay updated with latest tools and frameworks
- Contribute to open-source projects
- Mentor juniors and give back to community

Remember: Consistency is key. Practice daily, build projects, and keep applying. The Indian Data Science market is growing rapidly, and there are abundant opportunities for skilled professionals!`,
		Duration: "25 mins",
	},
}
