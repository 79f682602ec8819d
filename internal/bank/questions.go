package bank

import "github.com/harrison/civicmap/internal/models"

// questions is the built-in question bank in presentation order.
var questions = []models.Question{
	{
		ID:      1,
		Text:    "Public services like healthcare, education, and transportation should be run by the government to ensure universal access.",
		Weights: map[models.Axis]float64{models.EconomicPolicy: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      2,
		Text:    "Competition in the free market is the best way to improve quality and drive innovation.",
		Weights: map[models.Axis]float64{models.EconomicPolicy: -1},
		Scale:   models.LikertFive,
	},
	{
		ID:      3,
		Text:    "Higher taxes on the wealthy are necessary to reduce economic inequality.",
		Weights: map[models.Axis]float64{models.EconomicPolicy: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      4,
		Text:    "It is better for the government to regulate industries to prevent harm to the public, even if it limits economic freedom.",
		Weights: map[models.Axis]float64{models.EconomicPolicy: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      5,
		Text:    "Corporate profits should be capped to ensure workers receive fair compensation.",
		Weights: map[models.Axis]float64{models.EconomicPolicy: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      6,
		Text:    "Societies should continually challenge long-held customs to make space for progress.",
		Weights: map[models.Axis]float64{models.CulturalValues: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      7,
		Text:    "Maintaining cultural traditions is crucial for a healthy society, even if it means resisting change.",
		Weights: map[models.Axis]float64{models.CulturalValues: -1},
		Scale:   models.LikertFive,
	},
	{
		ID:      8,
		Text:    "The government should promote traditional family values, even if it means limiting personal freedoms.",
		Weights: map[models.Axis]float64{models.CulturalValues: -1, models.AuthorityGovernance: 0.5},
		Scale:   models.LikertFive,
	},
	{
		ID:      9,
		Text:    "Art and media should be censored when they conflict with societal moral standards.",
		Weights: map[models.Axis]float64{models.CulturalValues: -1, models.AuthorityGovernance: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      10,
		Text:    "It is important to challenge the status quo and push for progressive reforms.",
		Weights: map[models.Axis]float64{models.CulturalValues: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      11,
		Text:    "In times of crisis, governments should have expanded powers to maintain order—even if it limits some freedoms.",
		Weights: map[models.Axis]float64{models.AuthorityGovernance: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      12,
		Text:    "No individual or group should hold unchecked authority, regardless of the situation.",
		Weights: map[models.Axis]float64{models.AuthorityGovernance: -1},
		Scale:   models.LikertFive,
	},
	{
		ID:      13,
		Text:    "Police should have more authority to maintain public order and prevent crime, even if it means sacrificing civil liberties.",
		Weights: map[models.Axis]float64{models.AuthorityGovernance: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      14,
		Text:    "A strong central government is necessary to ensure stability and protect the public from external threats.",
		Weights: map[models.Axis]float64{models.AuthorityGovernance: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      15,
		Text:    "Governments should not impose laws that infringe on personal freedoms, even if they are meant to protect society as a whole.",
		Weights: map[models.Axis]float64{models.AuthorityGovernance: -1},
		Scale:   models.LikertFive,
	},
	{
		ID:      16,
		Text:    "Universal basic income should be implemented to ensure that no one falls below the poverty line.",
		Weights: map[models.Axis]float64{models.SocialSafety: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      17,
		Text:    "People should be given a safety net in times of economic hardship, regardless of the cause.",
		Weights: map[models.Axis]float64{models.SocialSafety: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      18,
		Text:    "The government should have the power to implement policies that promote wealth redistribution to achieve greater equality.",
		Weights: map[models.Axis]float64{models.SocialSafety: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      19,
		Text:    "Charity should replace government welfare programs to encourage personal responsibility and reduce dependency.",
		Weights: map[models.Axis]float64{models.SocialSafety: -1},
		Scale:   models.LikertFive,
	},
	{
		ID:      20,
		Text:    "Everyone should be responsible for their own success or failure; government involvement often makes things worse.",
		Weights: map[models.Axis]float64{models.SocialSafety: -1},
		Scale:   models.LikertFive,
	},
	{
		ID:      21,
		Text:    "National borders are outdated—we need to think globally to solve global problems.",
		Weights: map[models.Axis]float64{models.GlobalLocal: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      22,
		Text:    "Nations should prioritize their own citizens and protect their unique identity and interests first.",
		Weights: map[models.Axis]float64{models.GlobalLocal: -1},
		Scale:   models.LikertFive,
	},
	{
		ID:      23,
		Text:    "Global cooperation is essential to tackle issues like climate change, poverty, and war.",
		Weights: map[models.Axis]float64{models.GlobalLocal: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      24,
		Text:    "It is important to prioritize local businesses and workers over international trade agreements.",
		Weights: map[models.Axis]float64{models.GlobalLocal: -1},
		Scale:   models.LikertFive,
	},
	{
		ID:      25,
		Text:    "Internationalism should take precedence over national sovereignty in the pursuit of global peace and prosperity.",
		Weights: map[models.Axis]float64{models.GlobalLocal: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      26,
		Text:    "Technology will solve most of the world’s problems if we invest in it and embrace innovation.",
		Weights: map[models.Axis]float64{models.TechEcoBalance: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      27,
		Text:    "Unchecked technological progress risks destroying the environment and alienating humanity.",
		Weights: map[models.Axis]float64{models.TechEcoBalance: -1},
		Scale:   models.LikertFive,
	},
	{
		ID:      28,
		Text:    "We should focus more on developing sustainable technologies that protect the environment rather than maximizing economic growth.",
		Weights: map[models.Axis]float64{models.TechEcoBalance: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      29,
		Text:    "Technological advancements should be regulated to ensure they don’t have harmful consequences for society and the environment.",
		Weights: map[models.Axis]float64{models.TechEcoBalance: 1, models.AuthorityGovernance: 0.5},
		Scale:   models.LikertFive,
	},
	{
		ID:      30,
		Text:    "The rapid advancement of artificial intelligence and biotechnology should be embraced, even if it leads to significant societal disruption.",
		Weights: map[models.Axis]float64{models.TechEcoBalance: -1},
		Scale:   models.LikertFive,
	},
	{
		ID:      31,
		Text:    "Revolutions are sometimes necessary to uproot systems of oppression.",
		Weights: map[models.Axis]float64{models.ChangeTolerance: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      32,
		Text:    "Lasting progress comes from working within the system, not tearing it down.",
		Weights: map[models.Axis]float64{models.ChangeTolerance: -1},
		Scale:   models.LikertFive,
	},
	{
		ID:      33,
		Text:    "Major reforms should be implemented immediately to fix systemic issues like poverty and inequality.",
		Weights: map[models.Axis]float64{models.ChangeTolerance: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      34,
		Text:    "Small, incremental changes are more effective than sweeping transformations.",
		Weights: map[models.Axis]float64{models.ChangeTolerance: -1},
		Scale:   models.LikertFive,
	},
	{
		ID:      35,
		Text:    "It’s better to challenge the system and push for radical change rather than trying to fit in and work with existing institutions.",
		Weights: map[models.Axis]float64{models.ChangeTolerance: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      36,
		Text:    "It’s more important to protect the vulnerable than to preserve tradition.",
		Weights: map[models.Axis]float64{models.MoralFoundations: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      37,
		Text:    "Loyalty to your community and nation should take precedence over abstract ideals.",
		Weights: map[models.Axis]float64{models.MoralFoundations: -1},
		Scale:   models.LikertFive,
	},
	{
		ID:      38,
		Text:    "Respect for authority and order is essential for a stable society, even if it means sacrificing some freedoms.",
		Weights: map[models.Axis]float64{models.MoralFoundations: -1},
		Scale:   models.LikertFive,
	},
	{
		ID:      39,
		Text:    "Individuals should be free to express themselves however they like, even if it challenges social norms.",
		Weights: map[models.Axis]float64{models.MoralFoundations: 1},
		Scale:   models.LikertFive,
	},
	{
		ID:      40,
		Text:    "Maintaining purity (moral, religious, cultural) is vital to protecting society from corruption.",
		Weights: map[models.Axis]float64{models.MoralFoundations: -1},
		Scale:   models.LikertFive,
	},
}
