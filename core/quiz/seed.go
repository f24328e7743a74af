package quiz

// DefaultQuestions is the built-in question set, used whenever quiz.json is
// missing or fails validation.
var DefaultQuestions = []Question{
	{
		ID:       1,
		Question: "Which Indian e-commerce company is mentioned as a major employer of data scientists for demand prediction during festivals?",
		Options: []string{
			"Amazon India",
			"Flipkart",
			"Myntra",
			"Snapdeal",
		},
		CorrectAnswer: 1,
		Explanation: "Flipkart employs thousands of data scientists to predict product demand during festivals like Diwali and " +
			"Big Billion Days, optimize delivery routes, and personalize recommendations for 350+ million customers.",
	},
	{
		ID:       2,
		Question: "According to NASSCOM, how many data science professionals does India need by 2025?",
		Options: []string{
			"50,000",
			"1,00,000",
			"1,50,000 (1.5 lakh)",
			"2,00,000",
		},
		CorrectAnswer: 2,
		Explanation: "NASSCOM reports indicate that India needs over 1.5 lakh (150,000) data science professionals by 2025 to " +
			"meet the growing demand in the IT and tech sector.",
	},
	{
		ID:       3,
		Question: "Which Python library is primarily used for data manipulation with DataFrames and is essential for reading CSV files?",
		Options: []string{
			"NumPy",
			"Matplotlib",
			"Pandas",
			"Seaborn",
		},
		CorrectAnswer: 2,
		Explanation: "Pandas is the essential library for data manipulation in Python. It provides DataFrames and Series data " +
			"structures and is used for reading CSV/Excel files, data cleaning, and preprocessing.",
	},
	{
		ID:       4,
		Question: "In Indian context, which machine learning algorithm would be most suitable for customer segmentation in e-commerce?",
		Options: []string{
			"Linear Regression",
			"Logistic Regression",
			"K-Means Clustering",
			"Decision Trees",
		},
		CorrectAnswer: 2,
		Explanation: "K-Means Clustering is an unsupervised learning algorithm ideal for customer segmentation. It groups " +
			"customers by buying behavior, which is valuable for e-commerce platforms like Amazon and Flipkart.",
	},
	{
		ID:       5,
		Question: "What is the typical salary range for an entry-level Data Scientist (0-1 year experience) in India as of 2024?",
		Options: []string{
			"₹2-4 LPA",
			"₹3-6 LPA",
			"₹8-12 LPA",
			"₹15-20 LPA",
		},
		CorrectAnswer: 1,
		Explanation: "Entry-level Data Scientists (0-1 year experience) in India typically earn between ₹3-6 LPA (Lakhs Per " +
			"Annum), though this can vary based on company, location, and skills.",
	},
	{
		ID:       6,
		Question: "Which type of neural network is best suited for image recognition tasks such as Aadhaar-based face verification?",
		Options: []string{
			"Recurrent Neural Networks (RNN)",
			"Convolutional Neural Networks (CNN)",
			"Artificial Neural Networks (ANN)",
			"Generative Adversarial Networks (GAN)",
		},
		CorrectAnswer: 1,
		Explanation: "Convolutional Neural Networks (CNNs) are specifically designed for computer vision and image recognition " +
			"tasks. They use convolutional layers and pooling to detect features in images, making them ideal for face " +
			"verification systems.",
	},
	{
		ID:       7,
		Question: "In hypothesis testing, what is the commonly used significance level (α) for determining statistical significance?",
		Options: []string{
			"0.01",
			"0.05",
			"0.10",
			"0.25",
		},
		CorrectAnswer: 1,
		Explanation: "The significance level α = 0.05 is the most commonly used threshold in hypothesis testing. It means " +
			"there's a 5% chance of rejecting the null hypothesis when it's actually true (Type I error).",
	},
	{
		ID:       8,
		Question: "Which Indian government initiative is focused on AI and data science development?",
		Options: []string{
			"Make in India",
			"Digital India and NITI Aayog AI programs",
			"Skill India",
			"Startup India",
		},
		CorrectAnswer: 1,
		Explanation: "Digital India and NITI Aayog's AI programs are the primary government initiatives focused on AI and data " +
			"science development. NITI Aayog has launched 'AI for All' and other programs to promote AI adoption in India.",
	},
	{
		ID:       9,
		Question: "Which deep learning framework is developed by Google and widely used in the Indian tech industry?",
		Options: []string{
			"PyTorch",
			"Keras",
			"TensorFlow",
			"Caffe",
		},
		CorrectAnswer: 2,
		Explanation: "TensorFlow is developed by Google and is one of the most popular deep learning frameworks used in India " +
			"and worldwide. It's used for building and training neural networks for various applications.",
	},
	{
		ID:       10,
		Question: "For detecting fraud in UPI transactions (Paytm, PhonePe), which type of machine learning would be most appropriate?",
		Options: []string{
			"Supervised Learning - Classification",
			"Unsupervised Learning - Clustering",
			"Reinforcement Learning",
			"Semi-supervised Learning",
		},
		CorrectAnswer: 0,
		Explanation: "Supervised Learning with Classification algorithms (like Logistic Regression or Random Forest) is most " +
			"appropriate for fraud detection. The model is trained on labeled data (fraudulent vs legitimate transactions) " +
			"to classify new transactions.",
	},
}
