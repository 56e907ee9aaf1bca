// Package niche implements the deterministic, non-repeating daily niche
// picker: a curated candidate pool, a rotation-penalty scorer, and a
// SHA-256 date-seeded tie-break, grounded on the registry/selection shape
// of pkg/config/chain.go's named-entry lookup generalized to a scored
// pick rather than an exact-name match.
package niche

import "github.com/ridgeline-media/topfive/pkg/models"

// Pool is the curated, in-code candidate set searched each day. It is not
// meant to be exhaustive of any real catalog — it is the fixed universe
// the picker rotates through, refreshed by editing this file.
var Pool = []models.NicheCandidate{
	{Keyword: "wireless gaming mice", Category: "electronics", Subcategory: "gaming peripherals", Intent: models.IntentGaming, PriceMin: 30, PriceMax: 120, ReviewCoverage: 5, AmazonDepth: 5, Monetization: 4},
	{Keyword: "mechanical gaming keyboards", Category: "electronics", Subcategory: "gaming peripherals", Intent: models.IntentGaming, PriceMin: 50, PriceMax: 220, ReviewCoverage: 5, AmazonDepth: 5, Monetization: 4},
	{Keyword: "gaming headsets", Category: "electronics", Subcategory: "gaming peripherals", Intent: models.IntentGaming, PriceMin: 40, PriceMax: 250, ReviewCoverage: 5, AmazonDepth: 5, Monetization: 4},
	{Keyword: "gaming chairs", Category: "furniture", Subcategory: "gaming furniture", Intent: models.IntentGaming, PriceMin: 150, PriceMax: 600, ReviewCoverage: 3, AmazonDepth: 4, Monetization: 5},
	{Keyword: "controller charging docks", Category: "electronics", Subcategory: "gaming accessories", Intent: models.IntentGaming, PriceMin: 15, PriceMax: 60, ReviewCoverage: 3, AmazonDepth: 3, Monetization: 3},
	{Keyword: "capture cards", Category: "electronics", Subcategory: "streaming gear", Intent: models.IntentGaming, PriceMin: 80, PriceMax: 350, ReviewCoverage: 4, AmazonDepth: 3, Monetization: 4},
	{Keyword: "streaming ring lights", Category: "electronics", Subcategory: "streaming gear", Intent: models.IntentCreative, PriceMin: 20, PriceMax: 150, ReviewCoverage: 3, AmazonDepth: 4, Monetization: 3},
	{Keyword: "USB microphones", Category: "electronics", Subcategory: "audio", Intent: models.IntentCreative, PriceMin: 40, PriceMax: 300, ReviewCoverage: 5, AmazonDepth: 5, Monetization: 4},
	{Keyword: "podcast mixers", Category: "electronics", Subcategory: "audio", Intent: models.IntentCreative, PriceMin: 100, PriceMax: 500, ReviewCoverage: 3, AmazonDepth: 3, Monetization: 4},
	{Keyword: "noise-cancelling headphones", Category: "electronics", Subcategory: "audio", Intent: models.IntentGeneral, PriceMin: 50, PriceMax: 400, ReviewCoverage: 5, AmazonDepth: 5, Monetization: 5},
	{Keyword: "true wireless earbuds", Category: "electronics", Subcategory: "audio", Intent: models.IntentGeneral, PriceMin: 30, PriceMax: 300, ReviewCoverage: 5, AmazonDepth: 5, Monetization: 5},
	{Keyword: "bluetooth speakers", Category: "electronics", Subcategory: "audio", Intent: models.IntentGeneral, PriceMin: 25, PriceMax: 250, ReviewCoverage: 4, AmazonDepth: 5, Monetization: 4},
	{Keyword: "portable power banks", Category: "electronics", Subcategory: "mobile accessories", Intent: models.IntentTravel, PriceMin: 15, PriceMax: 100, ReviewCoverage: 4, AmazonDepth: 5, Monetization: 3},
	{Keyword: "travel adapters", Category: "travel", Subcategory: "travel electronics", Intent: models.IntentTravel, PriceMin: 10, PriceMax: 50, ReviewCoverage: 3, AmazonDepth: 4, Monetization: 2},
	{Keyword: "packing cubes", Category: "travel", Subcategory: "luggage organization", Intent: models.IntentTravel, PriceMin: 15, PriceMax: 60, ReviewCoverage: 3, AmazonDepth: 5, Monetization: 3},
	{Keyword: "carry-on luggage", Category: "travel", Subcategory: "luggage", Intent: models.IntentTravel, PriceMin: 60, PriceMax: 350, ReviewCoverage: 4, AmazonDepth: 4, Monetization: 4},
	{Keyword: "travel neck pillows", Category: "travel", Subcategory: "travel comfort", Intent: models.IntentTravel, PriceMin: 15, PriceMax: 60, ReviewCoverage: 2, AmazonDepth: 4, Monetization: 2},
	{Keyword: "portable espresso makers", Category: "travel", Subcategory: "travel kitchen", Intent: models.IntentTravel, PriceMin: 30, PriceMax: 120, ReviewCoverage: 2, AmazonDepth: 3, Monetization: 3},
	{Keyword: "hiking backpacks", Category: "outdoor", Subcategory: "hiking gear", Intent: models.IntentFitness, PriceMin: 50, PriceMax: 300, ReviewCoverage: 4, AmazonDepth: 4, Monetization: 4},
	{Keyword: "trail running shoes", Category: "outdoor", Subcategory: "footwear", Intent: models.IntentFitness, PriceMin: 60, PriceMax: 220, ReviewCoverage: 5, AmazonDepth: 5, Monetization: 4},
	{Keyword: "insulated water bottles", Category: "outdoor", Subcategory: "hydration", Intent: models.IntentFitness, PriceMin: 15, PriceMax: 60, ReviewCoverage: 4, AmazonDepth: 5, Monetization: 3},
	{Keyword: "camping tents", Category: "outdoor", Subcategory: "camping gear", Intent: models.IntentTravel, PriceMin: 80, PriceMax: 500, ReviewCoverage: 4, AmazonDepth: 4, Monetization: 4},
	{Keyword: "sleeping bags", Category: "outdoor", Subcategory: "camping gear", Intent: models.IntentTravel, PriceMin: 50, PriceMax: 300, ReviewCoverage: 3, AmazonDepth: 4, Monetization: 3},
	{Keyword: "fitness trackers", Category: "wearables", Subcategory: "fitness tech", Intent: models.IntentFitness, PriceMin: 30, PriceMax: 400, ReviewCoverage: 5, AmazonDepth: 5, Monetization: 5},
	{Keyword: "smartwatches", Category: "wearables", Subcategory: "fitness tech", Intent: models.IntentFitness, PriceMin: 80, PriceMax: 600, ReviewCoverage: 5, AmazonDepth: 5, Monetization: 5},
	{Keyword: "adjustable dumbbells", Category: "fitness", Subcategory: "strength equipment", Intent: models.IntentFitness, PriceMin: 100, PriceMax: 500, ReviewCoverage: 4, AmazonDepth: 4, Monetization: 5},
	{Keyword: "yoga mats", Category: "fitness", Subcategory: "yoga", Intent: models.IntentFitness, PriceMin: 15, PriceMax: 100, ReviewCoverage: 4, AmazonDepth: 5, Monetization: 3},
	{Keyword: "resistance bands sets", Category: "fitness", Subcategory: "home gym", Intent: models.IntentFitness, PriceMin: 10, PriceMax: 60, ReviewCoverage: 3, AmazonDepth: 5, Monetization: 3},
	{Keyword: "rowing machines", Category: "fitness", Subcategory: "cardio equipment", Intent: models.IntentFitness, PriceMin: 200, PriceMax: 1200, ReviewCoverage: 3, AmazonDepth: 3, Monetization: 5},
	{Keyword: "foam rollers", Category: "fitness", Subcategory: "recovery", Intent: models.IntentFitness, PriceMin: 10, PriceMax: 80, ReviewCoverage: 3, AmazonDepth: 4, Monetization: 3},
	{Keyword: "massage guns", Category: "fitness", Subcategory: "recovery", Intent: models.IntentFitness, PriceMin: 40, PriceMax: 400, ReviewCoverage: 4, AmazonDepth: 5, Monetization: 5},
	{Keyword: "standing desks", Category: "furniture", Subcategory: "office furniture", Intent: models.IntentWork, PriceMin: 150, PriceMax: 900, ReviewCoverage: 5, AmazonDepth: 4, Monetization: 5},
	{Keyword: "ergonomic office chairs", Category: "furniture", Subcategory: "office furniture", Intent: models.IntentWork, PriceMin: 150, PriceMax: 1200, ReviewCoverage: 5, AmazonDepth: 4, Monetization: 5},
	{Keyword: "monitor arms", Category: "furniture", Subcategory: "desk accessories", Intent: models.IntentWork, PriceMin: 30, PriceMax: 200, ReviewCoverage: 3, AmazonDepth: 5, Monetization: 3},
	{Keyword: "mechanical keyboards for work", Category: "electronics", Subcategory: "office peripherals", Intent: models.IntentWork, PriceMin: 50, PriceMax: 250, ReviewCoverage: 4, AmazonDepth: 5, Monetization: 4},
	{Keyword: "webcams", Category: "electronics", Subcategory: "video conferencing", Intent: models.IntentWork, PriceMin: 30, PriceMax: 250, ReviewCoverage: 4, AmazonDepth: 5, Monetization: 4},
	{Keyword: "docking stations", Category: "electronics", Subcategory: "office peripherals", Intent: models.IntentWork, PriceMin: 60, PriceMax: 300, ReviewCoverage: 3, AmazonDepth: 4, Monetization: 4},
	{Keyword: "portable monitors", Category: "electronics", Subcategory: "displays", Intent: models.IntentWork, PriceMin: 100, PriceMax: 500, ReviewCoverage: 4, AmazonDepth: 4, Monetization: 4},
	{Keyword: "ultrawide monitors", Category: "electronics", Subcategory: "displays", Intent: models.IntentWork, PriceMin: 250, PriceMax: 1500, ReviewCoverage: 4, AmazonDepth: 3, Monetization: 5},
	{Keyword: "label makers", Category: "office", Subcategory: "organization", Intent: models.IntentWork, PriceMin: 20, PriceMax: 120, ReviewCoverage: 2, AmazonDepth: 4, Monetization: 2},
	{Keyword: "document scanners", Category: "office", Subcategory: "productivity hardware", Intent: models.IntentWork, PriceMin: 80, PriceMax: 400, ReviewCoverage: 3, AmazonDepth: 3, Monetization: 3},
	{Keyword: "robot vacuums", Category: "home", Subcategory: "cleaning", Intent: models.IntentGeneral, PriceMin: 150, PriceMax: 1200, ReviewCoverage: 5, AmazonDepth: 5, Monetization: 5},
	{Keyword: "cordless stick vacuums", Category: "home", Subcategory: "cleaning", Intent: models.IntentGeneral, PriceMin: 100, PriceMax: 600, ReviewCoverage: 4, AmazonDepth: 5, Monetization: 4},
	{Keyword: "air purifiers", Category: "home", Subcategory: "air quality", Intent: models.IntentGeneral, PriceMin: 50, PriceMax: 600, ReviewCoverage: 5, AmazonDepth: 5, Monetization: 4},
	{Keyword: "humidifiers", Category: "home", Subcategory: "air quality", Intent: models.IntentGeneral, PriceMin: 25, PriceMax: 200, ReviewCoverage: 3, AmazonDepth: 5, Monetization: 3},
	{Keyword: "smart thermostats", Category: "home", Subcategory: "smart home", Intent: models.IntentGeneral, PriceMin: 80, PriceMax: 300, ReviewCoverage: 4, AmazonDepth: 3, Monetization: 5},
	{Keyword: "smart plugs", Category: "home", Subcategory: "smart home", Intent: models.IntentGeneral, PriceMin: 10, PriceMax: 60, ReviewCoverage: 3, AmazonDepth: 5, Monetization: 3},
	{Keyword: "video doorbells", Category: "home", Subcategory: "smart home security", Intent: models.IntentGeneral, PriceMin: 60, PriceMax: 300, ReviewCoverage: 5, AmazonDepth: 4, Monetization: 5},
	{Keyword: "smart locks", Category: "home", Subcategory: "smart home security", Intent: models.IntentGeneral, PriceMin: 80, PriceMax: 350, ReviewCoverage: 4, AmazonDepth: 3, Monetization: 5},
	{Keyword: "security cameras", Category: "home", Subcategory: "smart home security", Intent: models.IntentGeneral, PriceMin: 30, PriceMax: 300, ReviewCoverage: 5, AmazonDepth: 5, Monetization: 5},
	{Keyword: "smart displays", Category: "home", Subcategory: "smart home", Intent: models.IntentGeneral, PriceMin: 40, PriceMax: 250, ReviewCoverage: 3, AmazonDepth: 4, Monetization: 4},
	{Keyword: "smart speakers", Category: "home", Subcategory: "smart home", Intent: models.IntentGeneral, PriceMin: 30, PriceMax: 250, ReviewCoverage: 3, AmazonDepth: 5, Monetization: 4},
	{Keyword: "air fryers", Category: "kitchen", Subcategory: "countertop appliances", Intent: models.IntentGeneral, PriceMin: 50, PriceMax: 300, ReviewCoverage: 5, AmazonDepth: 5, Monetization: 5},
	{Keyword: "espresso machines", Category: "kitchen", Subcategory: "coffee", Intent: models.IntentGeneral, PriceMin: 100, PriceMax: 1500, ReviewCoverage: 5, AmazonDepth: 4, Monetization: 5},
	{Keyword: "coffee grinders", Category: "kitchen", Subcategory: "coffee", Intent: models.IntentGeneral, PriceMin: 30, PriceMax: 400, ReviewCoverage: 4, AmazonDepth: 4, Monetization: 4},
	{Keyword: "stand mixers", Category: "kitchen", Subcategory: "baking appliances", Intent: models.IntentGeneral, PriceMin: 150, PriceMax: 600, ReviewCoverage: 4, AmazonDepth: 4, Monetization: 4},
	{Keyword: "blenders", Category: "kitchen", Subcategory: "small appliances", Intent: models.IntentGeneral, PriceMin: 40, PriceMax: 500, ReviewCoverage: 4, AmazonDepth: 5, Monetization: 4},
	{Keyword: "sous vide precision cookers", Category: "kitchen", Subcategory: "cooking tools", Intent: models.IntentGeneral, PriceMin: 60, PriceMax: 300, ReviewCoverage: 3, AmazonDepth: 3, Monetization: 4},
	{Keyword: "chef's knives", Category: "kitchen", Subcategory: "cutlery", Intent: models.IntentGeneral, PriceMin: 30, PriceMax: 300, ReviewCoverage: 4, AmazonDepth: 5, Monetization: 3},
	{Keyword: "cast iron skillets", Category: "kitchen", Subcategory: "cookware", Intent: models.IntentGeneral, PriceMin: 20, PriceMax: 150, ReviewCoverage: 3, AmazonDepth: 5, Monetization: 3},
	{Keyword: "electric kettles", Category: "kitchen", Subcategory: "small appliances", Intent: models.IntentGeneral, PriceMin: 20, PriceMax: 150, ReviewCoverage: 3, AmazonDepth: 5, Monetization: 2},
	{Keyword: "meal prep containers", Category: "kitchen", Subcategory: "food storage", Intent: models.IntentFitness, PriceMin: 15, PriceMax: 60, ReviewCoverage: 2, AmazonDepth: 5, Monetization: 2},
	{Keyword: "weighted blankets", Category: "home", Subcategory: "bedding", Intent: models.IntentGeneral, PriceMin: 30, PriceMax: 200, ReviewCoverage: 3, AmazonDepth: 5, Monetization: 3},
	{Keyword: "memory foam pillows", Category: "home", Subcategory: "bedding", Intent: models.IntentGeneral, PriceMin: 20, PriceMax: 120, ReviewCoverage: 4, AmazonDepth: 5, Monetization: 3},
	{Keyword: "cooling mattress toppers", Category: "home", Subcategory: "bedding", Intent: models.IntentGeneral, PriceMin: 60, PriceMax: 350, ReviewCoverage: 3, AmazonDepth: 4, Monetization: 4},
	{Keyword: "blackout curtains", Category: "home", Subcategory: "window treatments", Intent: models.IntentGeneral, PriceMin: 20, PriceMax: 120, ReviewCoverage: 2, AmazonDepth: 5, Monetization: 2},
	{Keyword: "desk lamps", Category: "home", Subcategory: "lighting", Intent: models.IntentWork, PriceMin: 15, PriceMax: 150, ReviewCoverage: 3, AmazonDepth: 5, Monetization: 2},
	{Keyword: "smart light bulbs", Category: "home", Subcategory: "lighting", Intent: models.IntentGeneral, PriceMin: 10, PriceMax: 80, ReviewCoverage: 3, AmazonDepth: 5, Monetization: 3},
	{Keyword: "electric toothbrushes", Category: "personal care", Subcategory: "oral care", Intent: models.IntentGeneral, PriceMin: 20, PriceMax: 300, ReviewCoverage: 5, AmazonDepth: 5, Monetization: 5},
	{Keyword: "hair dryers", Category: "personal care", Subcategory: "hair styling", Intent: models.IntentGeneral, PriceMin: 20, PriceMax: 500, ReviewCoverage: 4, AmazonDepth: 5, Monetization: 4},
	{Keyword: "hair straighteners", Category: "personal care", Subcategory: "hair styling", Intent: models.IntentGeneral, PriceMin: 20, PriceMax: 350, ReviewCoverage: 4, AmazonDepth: 5, Monetization: 4},
	{Keyword: "electric shavers", Category: "personal care", Subcategory: "shaving", Intent: models.IntentGeneral, PriceMin: 30, PriceMax: 400, ReviewCoverage: 4, AmazonDepth: 5, Monetization: 4},
	{Keyword: "facial steamers", Category: "personal care", Subcategory: "skincare tools", Intent: models.IntentGeneral, PriceMin: 20, PriceMax: 150, ReviewCoverage: 2, AmazonDepth: 3, Monetization: 2},
	{Keyword: "led face masks", Category: "personal care", Subcategory: "skincare tools", Intent: models.IntentGeneral, PriceMin: 60, PriceMax: 400, ReviewCoverage: 2, AmazonDepth: 3, Monetization: 3},
	{Keyword: "electric blankets", Category: "home", Subcategory: "bedding", Intent: models.IntentGeneral, PriceMin: 25, PriceMax: 150, ReviewCoverage: 2, AmazonDepth: 5, Monetization: 2},
	{Keyword: "baby monitors", Category: "baby", Subcategory: "nursery tech", Intent: models.IntentGeneral, PriceMin: 40, PriceMax: 350, ReviewCoverage: 4, AmazonDepth: 4, Monetization: 4},
	{Keyword: "baby strollers", Category: "baby", Subcategory: "mobility", Intent: models.IntentGeneral, PriceMin: 100, PriceMax: 900, ReviewCoverage: 4, AmazonDepth: 3, Monetization: 5},
	{Keyword: "convertible car seats", Category: "baby", Subcategory: "car safety", Intent: models.IntentGeneral, PriceMin: 100, PriceMax: 500, ReviewCoverage: 4, AmazonDepth: 3, Monetization: 5},
	{Keyword: "baby bottle sterilizers", Category: "baby", Subcategory: "feeding", Intent: models.IntentGeneral, PriceMin: 30, PriceMax: 150, ReviewCoverage: 2, AmazonDepth: 3, Monetization: 3},
	{Keyword: "dog cameras", Category: "pets", Subcategory: "pet tech", Intent: models.IntentGeneral, PriceMin: 50, PriceMax: 250, ReviewCoverage: 3, AmazonDepth: 3, Monetization: 4},
	{Keyword: "automatic pet feeders", Category: "pets", Subcategory: "pet tech", Intent: models.IntentGeneral, PriceMin: 40, PriceMax: 250, ReviewCoverage: 4, AmazonDepth: 4, Monetization: 4},
	{Keyword: "dog gps trackers", Category: "pets", Subcategory: "pet tech", Intent: models.IntentGeneral, PriceMin: 30, PriceMax: 150, ReviewCoverage: 3, AmazonDepth: 3, Monetization: 4},
	{Keyword: "cat litter robots", Category: "pets", Subcategory: "pet tech", Intent: models.IntentGeneral, PriceMin: 200, PriceMax: 700, ReviewCoverage: 4, AmazonDepth: 3, Monetization: 5},
	{Keyword: "dash cams", Category: "automotive", Subcategory: "car electronics", Intent: models.IntentGeneral, PriceMin: 30, PriceMax: 300, ReviewCoverage: 4, AmazonDepth: 5, Monetization: 4},
	{Keyword: "portable jump starters", Category: "automotive", Subcategory: "car electronics", Intent: models.IntentGeneral, PriceMin: 40, PriceMax: 200, ReviewCoverage: 3, AmazonDepth: 4, Monetization: 4},
	{Keyword: "car phone mounts", Category: "automotive", Subcategory: "car accessories", Intent: models.IntentGeneral, PriceMin: 10, PriceMax: 50, ReviewCoverage: 3, AmazonDepth: 5, Monetization: 2},
	{Keyword: "wireless car chargers", Category: "automotive", Subcategory: "car electronics", Intent: models.IntentGeneral, PriceMin: 15, PriceMax: 80, ReviewCoverage: 3, AmazonDepth: 5, Monetization: 3},
	{Keyword: "drones under 250g", Category: "electronics", Subcategory: "camera drones", Intent: models.IntentCreative, PriceMin: 150, PriceMax: 1200, ReviewCoverage: 4, AmazonDepth: 3, Monetization: 5},
	{Keyword: "action cameras", Category: "electronics", Subcategory: "cameras", Intent: models.IntentCreative, PriceMin: 150, PriceMax: 600, ReviewCoverage: 4, AmazonDepth: 4, Monetization: 5},
	{Keyword: "camera tripods", Category: "electronics", Subcategory: "camera accessories", Intent: models.IntentCreative, PriceMin: 20, PriceMax: 250, ReviewCoverage: 3, AmazonDepth: 5, Monetization: 3},
	{Keyword: "vlogging cameras", Category: "electronics", Subcategory: "cameras", Intent: models.IntentCreative, PriceMin: 300, PriceMax: 1800, ReviewCoverage: 4, AmazonDepth: 3, Monetization: 5},
	{Keyword: "graphics tablets", Category: "electronics", Subcategory: "creative hardware", Intent: models.IntentCreative, PriceMin: 50, PriceMax: 500, ReviewCoverage: 3, AmazonDepth: 3, Monetization: 4},
	{Keyword: "portable printers", Category: "electronics", Subcategory: "printers", Intent: models.IntentWork, PriceMin: 50, PriceMax: 300, ReviewCoverage: 2, AmazonDepth: 3, Monetization: 3},
	{Keyword: "e-readers", Category: "electronics", Subcategory: "reading devices", Intent: models.IntentGeneral, PriceMin: 80, PriceMax: 350, ReviewCoverage: 4, AmazonDepth: 3, Monetization: 4},
	{Keyword: "tablet stands", Category: "electronics", Subcategory: "accessories", Intent: models.IntentGeneral, PriceMin: 10, PriceMax: 60, ReviewCoverage: 2, AmazonDepth: 5, Monetization: 2},
	{Keyword: "mesh wifi systems", Category: "electronics", Subcategory: "networking", Intent: models.IntentWork, PriceMin: 100, PriceMax: 600, ReviewCoverage: 4, AmazonDepth: 3, Monetization: 5},
	{Keyword: "external SSDs", Category: "electronics", Subcategory: "storage", Intent: models.IntentWork, PriceMin: 40, PriceMax: 400, ReviewCoverage: 4, AmazonDepth: 5, Monetization: 4},
	{Keyword: "portable projectors", Category: "electronics", Subcategory: "home theater", Intent: models.IntentGeneral, PriceMin: 80, PriceMax: 800, ReviewCoverage: 4, AmazonDepth: 4, Monetization: 4},
	{Keyword: "soundbars", Category: "electronics", Subcategory: "home theater", Intent: models.IntentGeneral, PriceMin: 100, PriceMax: 900, ReviewCoverage: 4, AmazonDepth: 4, Monetization: 5},
}

func init() {
	for i := range Pool {
		Pool[i].DerivePriceBand()
	}
}
