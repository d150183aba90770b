package quiz

import "github.com/greenplate/sustainabite/pkg/models"

// questions is the fixed trivia catalog. Answer is an index into Choices.
var questions = []models.QuizQuestion{
	{
		Question: "What percentage of global food produced is wasted each year?",
		Choices:  []string{"10%", "25%", "33%", "50%"},
		Answer:   2,
	},
	{
		Question: "Which gas is most associated with food waste in landfills?",
		Choices:  []string{"Carbon Dioxide", "Methane", "Nitrous Oxide", "Ozone"},
		Answer:   1,
	},
	{
		Question: "Leftover fruits and vegetables can be composted to reduce waste.",
		Choices:  []string{"True", "False"},
		Answer:   0,
	},
	{
		Question: "Estimate the amount of water (in liters) wasted per kilogram of beef produced.",
		Choices:  []string{"500L", "1500L", "5000L", "10000L"},
		Answer:   3,
	},
	{
		Question: "Which practice helps reduce food waste at home?",
		Choices: []string{
			"Meal planning",
			"Overbuying in bulk",
			"Ignoring expiration dates",
			"Cooking extra portions",
		},
		Answer: 0,
	},
	{
		Question: "What does the 'use by' date on a package typically mean?",
		Choices: []string{
			"Recommended last date for best flavor",
			"Safety date after which food shouldn't be eaten",
			"Date to mark for composting",
			"Sell-by date for retailers",
		},
		Answer: 1,
	},
	{
		Question: "Which method diverts unwanted food waste from landfills?",
		Choices: []string{
			"Anaerobic digestion",
			"Composting",
			"Incineration",
			"Ocean dumping",
		},
		Answer: 1,
	},
	{
		Question: "Meal planning helps reduce food waste by:",
		Choices: []string{
			"Encouraging cooking experiments",
			"Buying in bulk only",
			"Purchasing only what you need",
			"Extending shelf life",
		},
		Answer: 2,
	},
	{
		Question: "In the U.S., approximately how much edible food is thrown away annually by households?",
		Choices: []string{
			"5 million tons",
			"10 million tons",
			"20 million tons",
			"40 million tons",
		},
		Answer: 3,
	},
	{
		Question: "Which material is NOT recommended for home composting?",
		Choices: []string{
			"Eggshells",
			"Coffee grounds",
			"Plastic wrappers",
			"Vegetable scraps",
		},
		Answer: 2,
	},
	{
		Question: "What percentage of methane emissions in the U.S. comes from landfills?",
		Choices:  []string{"5%", "15%", "20%", "30%"},
		Answer:   1,
	},
	{
		Question: "True or False: Freezing leftovers extends the safe consumption period.",
		Choices:  []string{"True", "False"},
		Answer:   0,
	},
	{
		Question: "Which action contributes most to reducing food waste at home?",
		Choices: []string{
			"Composting scraps",
			"Eating leftovers",
			"Buying discounted clearance items",
			"Recycling packaging",
		},
		Answer: 1,
	},
	{
		Question: "Which technology helps retailers reduce food waste?",
		Choices: []string{
			"RFID inventory tracking",
			"Solar panels",
			"Augmented reality shopping",
			"3D printing",
		},
		Answer: 0,
	},
	{
		Question: "Which smartphone feature can help reduce food waste?",
		Choices: []string{
			"Barcode scanning for expiry dates",
			"Social media sharing",
			"Video streaming",
			"Voice calls",
		},
		Answer: 0,
	},
	{
		Question: "Approximately what percentage of food waste in developed countries comes from households?",
		Choices:  []string{"10%", "30%", "50%", "70%"},
		Answer:   2,
	},
	{
		Question: "True or False: Composting food scraps can reduce methane emissions compared to landfilling.",
		Choices:  []string{"True", "False"},
		Answer:   0,
	},
	{
		Question: "Which fruit typically has the shortest shelf life at room temperature?",
		Choices:  []string{"Apple", "Banana", "Strawberry", "Orange"},
		Answer:   2,
	},
	{
		Question: "What is the recommended freezer temperature (in °C) to safely store food long-term?",
		Choices:  []string{"0°C", "-5°C", "-10°C", "-18°C"},
		Answer:   3,
	},
	{
		Question: "Which stage of the food supply chain contributes the most greenhouse gas emissions?",
		Choices:  []string{"Production", "Transportation", "Storage", "Disposal"},
		Answer:   0,
	},
	{
		Question: "Per metric ton of food, approximately how much CO₂-equivalent is saved by composting vs. landfilling?",
		Choices:  []string{"500 kg", "1 ton", "1.5 tons", "2 tons"},
		Answer:   1,
	},
	{
		Question: "Which label indicates the last date a perishable food should be eaten for safety?",
		Choices:  []string{"Best By", "Use By", "Sell By", "Enjoy By"},
		Answer:   1,
	},
	{
		Question: "True or False: Canning generally extends shelf life more than freezing.",
		Choices:  []string{"True", "False"},
		Answer:   0,
	},
	{
		Question: "What is the ideal carbon-to-nitrogen ratio (browns:greens) for home composting?",
		Choices:  []string{"10:1", "20:1", "30:1", "40:1"},
		Answer:   2,
	},
	{
		Question: "Which retail practice often leads directly to increased food waste?",
		Choices:  []string{"Understocking", "Overstocking", "Precision pricing", "Demand forecasting"},
		Answer:   1,
	},
}
