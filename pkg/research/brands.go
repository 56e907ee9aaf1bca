package research

// Brands is the known-brand lexicon used to anchor product-mention
// extraction from review titles/descriptions. Not exhaustive of any real
// catalog — a fixed, curated list the extractor checks against before
// falling back to the model-tail regex.
var Brands = []string{
	"Sony", "Bose", "Sennheiser", "Audio-Technica", "JBL", "Beats",
	"Anker", "Soundcore", "Jabra", "Skullcandy", "Marshall", "Shure",
	"Samsung", "Apple", "Google", "Amazon", "Microsoft", "Logitech",
	"Razer", "SteelSeries", "Corsair", "HyperX", "ASUS", "Acer", "Dell",
	"HP", "Lenovo", "LG", "Philips", "Sharp", "TCL", "Vizio", "Roku",
	"Garmin", "Fitbit", "Whoop", "Polar", "Suunto", "Wahoo",
	"Dyson", "Shark", "Roomba", "iRobot", "Eufy", "Ecovacs", "Bissell",
	"Hoover", "Instant Pot", "Ninja", "Breville", "KitchenAid", "Cuisinart",
	"Vitamix", "Keurig", "Nespresso", "De'Longhi", "Oxo", "Lodge",
	"Le Creuset", "Zwilling", "Wusthof", "Victorinox", "Global",
	"Osprey", "Patagonia", "The North Face", "REI Co-op", "Yeti",
	"Hydro Flask", "Stanley", "CamelBak", "Nalgene", "Nike", "Adidas",
	"New Balance", "Brooks", "Hoka", "Salomon", "Merrell", "Columbia",
	"Therabody", "Hyperice", "TriggerPoint", "RENPHO", "Theragun",
	"GoPro", "DJI", "Insta360", "Canon", "Nikon", "Fujifilm", "Peak Design",
	"Wacom", "Huion", "XP-Pen", "Elgato", "Blue", "Rode", "FIFINE",
	"TP-Link", "Netgear", "Eero", "Asus ROG", "Ubiquiti", "Ring",
	"Arlo", "Wyze", "Nest", "Ecobee", "Kasa", "Govee", "Philips Hue",
	"Tile", "Chipolo", "Whistle", "Fi", "Litter-Robot", "PetSafe",
	"Furbo", "Graco", "Chicco", "Britax", "Nuna", "UPPAbaby", "4moms",
	"Oral-B", "Waterpik", "Philips Sonicare", "Remington", "Conair",
	"Revlon", "T3", "Dyson Airwrap", "BaByliss",
}
