package bank

import "github.com/harrison/civicmap/internal/models"

// archetypes is the built-in archetype table. Order is significant: the
// first archetype whose conditions hold wins.
var archetypes = []models.Archetype{
	{
		Name:         "Techno-Progressive Localist",
		DominantAxes: []models.Axis{models.CulturalValues, models.TechEcoBalance, models.GlobalLocal},
		Conditions: map[models.Axis]models.Tier{
			models.CulturalValues: models.TierHigh,
			models.TechEcoBalance: models.TierHigh,
			models.GlobalLocal:    models.TierLow,
		},
		Description: "Embraces innovation and change, but believes in local solutions and preserving community identity.",
	},
	{
		Name:         "Global Solidarity Advocate",
		DominantAxes: []models.Axis{models.EconomicPolicy, models.SocialSafety, models.GlobalLocal},
		Conditions: map[models.Axis]models.Tier{
			models.EconomicPolicy: models.TierHigh,
			models.SocialSafety:   models.TierHigh,
			models.GlobalLocal:    models.TierHigh,
		},
		Description: "Pushes for international justice, strong safety nets, and wealth equality through global cooperation.",
	},
	{
		Name:         "Libertarian Reformist",
		DominantAxes: []models.Axis{models.EconomicPolicy, models.AuthorityGovernance, models.CulturalValues},
		Conditions: map[models.Axis]models.Tier{
			models.EconomicPolicy:      models.TierLow,
			models.AuthorityGovernance: models.TierLow,
			models.CulturalValues:      models.TierHigh,
		},
		Description: "Supports free markets and personal freedom, with moderate social reform.",
	},
	{
		Name:         "Traditional Strong-State Nationalist",
		DominantAxes: []models.Axis{models.CulturalValues, models.AuthorityGovernance, models.GlobalLocal},
		Conditions: map[models.Axis]models.Tier{
			models.CulturalValues:      models.TierLow,
			models.AuthorityGovernance: models.TierHigh,
			models.GlobalLocal:         models.TierLow,
		},
		Description: "Emphasizes order, loyalty, and cultural preservation through centralized authority and nationalism.",
	},
	{
		Name:         "Eco-Guardian Pragmatist",
		DominantAxes: []models.Axis{models.TechEcoBalance, models.ChangeTolerance, models.EconomicPolicy},
		Conditions: map[models.Axis]models.Tier{
			models.TechEcoBalance:  models.TierLow,
			models.ChangeTolerance: models.TierLow,
			models.EconomicPolicy:  models.TierMid,
		},
		Description: "Seeks a balanced approach between ecological sustainability and practical economic policies through slow reform.",
	},
	{
		Name:         "Revolutionary Global Technocrat",
		DominantAxes: []models.Axis{models.TechEcoBalance, models.ChangeTolerance, models.GlobalLocal},
		Conditions: map[models.Axis]models.Tier{
			models.TechEcoBalance:  models.TierHigh,
			models.ChangeTolerance: models.TierHigh,
			models.GlobalLocal:     models.TierHigh,
		},
		Description: "Wants a radical global overhaul powered by science, technology, and international institutions.",
	},
	{
		Name:         "Communitarian Conservative",
		DominantAxes: []models.Axis{models.SocialSafety, models.CulturalValues, models.ChangeTolerance},
		Conditions: map[models.Axis]models.Tier{
			models.SocialSafety:    models.TierHigh,
			models.CulturalValues:  models.TierLow,
			models.ChangeTolerance: models.TierLow,
		},
		Description: "Values community, tradition, and mutual support, favoring steady improvements to the existing order.",
	},
	{
		Name:         "Radical Libertarian Disruptor",
		DominantAxes: []models.Axis{models.AuthorityGovernance, models.MoralFoundations, models.ChangeTolerance},
		Conditions: map[models.Axis]models.Tier{
			models.AuthorityGovernance: models.TierLow,
			models.MoralFoundations:    models.TierHigh,
			models.ChangeTolerance:     models.TierHigh,
		},
		Description: "Wants to disrupt the system in pursuit of liberty and personal expression, with no tolerance for top-down control.",
	},
	{
		Name:         "Moderate Centrist",
		DominantAxes: []models.Axis{models.EconomicPolicy, models.SocialSafety, models.AuthorityGovernance},
		Conditions: map[models.Axis]models.Tier{
			models.EconomicPolicy:      models.TierMid,
			models.SocialSafety:        models.TierMid,
			models.AuthorityGovernance: models.TierMid,
		},
		Description: "Advocates for balanced policies, avoiding extremes in economic, social, and governance issues.",
	},
	{
		Name:         "Cultural Preservationist",
		DominantAxes: []models.Axis{models.CulturalValues, models.GlobalLocal, models.MoralFoundations},
		Conditions: map[models.Axis]models.Tier{
			models.CulturalValues:   models.TierHigh,
			models.GlobalLocal:      models.TierLow,
			models.MoralFoundations: models.TierHigh,
		},
		Description: "Focuses on preserving cultural traditions and moral values while resisting globalization.",
	},
	{
		Name:         "Progressive Technologist",
		DominantAxes: []models.Axis{models.TechEcoBalance, models.ChangeTolerance, models.EconomicPolicy},
		Conditions: map[models.Axis]models.Tier{
			models.TechEcoBalance:  models.TierHigh,
			models.ChangeTolerance: models.TierHigh,
			models.EconomicPolicy:  models.TierMid,
		},
		Description: "Believes in leveraging technology for progressive reforms while maintaining economic stability.",
	},
	{
		Name:         "Authoritarian Egalitarian",
		DominantAxes: []models.Axis{models.AuthorityGovernance, models.SocialSafety, models.EconomicPolicy},
		Conditions: map[models.Axis]models.Tier{
			models.AuthorityGovernance: models.TierHigh,
			models.SocialSafety:        models.TierHigh,
			models.EconomicPolicy:      models.TierHigh,
		},
		Description: "Supports a strong central government to enforce equality and provide robust social safety nets.",
	},
	{
		Name:         "Libertarian Minimalist",
		DominantAxes: []models.Axis{models.AuthorityGovernance, models.EconomicPolicy, models.GlobalLocal},
		Conditions: map[models.Axis]models.Tier{
			models.AuthorityGovernance: models.TierLow,
			models.EconomicPolicy:      models.TierLow,
			models.GlobalLocal:         models.TierLow,
		},
		Description: "Advocates for minimal government intervention, free markets, and local autonomy.",
	},
	{
		Name:         "Global Environmentalist",
		DominantAxes: []models.Axis{models.TechEcoBalance, models.GlobalLocal, models.ChangeTolerance},
		Conditions: map[models.Axis]models.Tier{
			models.TechEcoBalance:  models.TierLow,
			models.GlobalLocal:     models.TierHigh,
			models.ChangeTolerance: models.TierMid,
		},
		Description: "Prioritizes global cooperation to address environmental challenges through sustainable reforms.",
	},
	{
		Name:         "Traditionalist Isolationist",
		DominantAxes: []models.Axis{models.CulturalValues, models.GlobalLocal, models.AuthorityGovernance},
		Conditions: map[models.Axis]models.Tier{
			models.CulturalValues:      models.TierLow,
			models.GlobalLocal:         models.TierLow,
			models.AuthorityGovernance: models.TierHigh,
		},
		Description: "Focuses on preserving national identity and traditions through strong governance and isolationist policies.",
	},
}
