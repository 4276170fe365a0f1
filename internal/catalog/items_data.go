package catalog

// defaultItems is the built-in tradable item table. Values are community
// trade values, not in-game purchase prices.
var defaultItems = []Item{
	// Boats
	{Name: "Rowboat", Value: 1, Tier: TierF, Demand: 2, Status: "Obtainable", Category: CategoryBoat},
	{Name: "Kayak", Value: 2, Tier: TierF, Demand: 3, Status: "Obtainable", Category: CategoryBoat},
	{Name: "Small Dinghy", Value: 3, Tier: TierD, Demand: 3, Status: "Obtainable", Category: CategoryBoat},
	{Name: "Canoe", Value: 4, Tier: TierD, Demand: 4, Status: "Obtainable", Category: CategoryBoat},
	{Name: "Speedboat", Value: 10, Tier: TierC, Demand: 6, Status: "Obtainable", Category: CategoryBoat},
	{Name: "Sailboat", Value: 15, Tier: TierC, Demand: 5, Status: "Obtainable", Category: CategoryBoat},
	{Name: "Fishing Skiff", Value: 18, Tier: TierC, Demand: 4, Status: "Obtainable", Category: CategoryBoat},
	{Name: "Jetski", Value: 25, Tier: TierB, Demand: 7, Status: "Obtainable", Category: CategoryBoat},
	{Name: "Pontoon", Value: 30, Tier: TierB, Demand: 5, Status: "Obtainable", Category: CategoryBoat},
	{Name: "Highfield Boat", Value: 45, Tier: TierB, Demand: 6, Status: "Obtainable", Category: CategoryBoat},
	{Name: "Catamaran", Value: 60, Tier: TierA, Demand: 6, Status: "Obtainable", Category: CategoryBoat},
	{Name: "Steamboat", Value: 80, Tier: TierA, Demand: 7, Status: "Unobtainable", Category: CategoryBoat},
	{Name: "Frigate", Value: 120, Tier: TierA, Demand: 8, Status: "Unobtainable", Category: CategoryBoat},
	{Name: "Ghost Galleon", Value: 200, Tier: TierS, Demand: 9, Status: "Limited", Category: CategoryBoat},
	{Name: "Festive Sleigh", Value: 250, Tier: TierS, Demand: 8, Status: "Limited, Mass Duped", Category: CategoryBoat},
	{Name: "Kraken Hunter", Value: 400, Tier: TierSS, Demand: 9, Status: "Unobtainable", Category: CategoryBoat},
	{Name: "Royal Flagship", Value: 650, Tier: TierSS, Demand: 10, Status: "Unobtainable", Category: CategoryBoat},

	// Rod skins
	{Name: "Driftwood Skin", Value: 2, Tier: TierF, Demand: 1, Status: "Obtainable", Category: CategorySkin},
	{Name: "Bamboo Wrap", Value: 5, Tier: TierD, Demand: 2, Status: "Obtainable", Category: CategorySkin},
	{Name: "Coral Finish", Value: 12, Tier: TierC, Demand: 4, Status: "Obtainable", Category: CategorySkin},
	{Name: "Abyssal Wrap", Value: 20, Tier: TierC, Demand: 5, Status: "Obtainable", Category: CategorySkin},
	{Name: "Gilded Wrap", Value: 35, Tier: TierB, Demand: 6, Status: "Obtainable", Category: CategorySkin},
	{Name: "Stormcaller Skin", Value: 50, Tier: TierB, Demand: 6, Status: "Unobtainable", Category: CategorySkin},
	{Name: "Aurora Skin", Value: 75, Tier: TierA, Demand: 7, Status: "Limited", Category: CategorySkin},
	{Name: "Molten Core Skin", Value: 90, Tier: TierA, Demand: 7, Status: "Unobtainable, Mass Duped", Category: CategorySkin},
	{Name: "Galaxy Skin", Value: 150, Tier: TierS, Demand: 9, Status: "Limited", Category: CategorySkin},
	{Name: "Midas Skin", Value: 220, Tier: TierS, Demand: 8, Status: "Limited", Category: CategorySkin},
	{Name: "Phantom Skin", Value: 300, Tier: TierSS, Demand: 9, Status: "Unobtainable", Category: CategorySkin},
	{Name: "Leviathan Skin", Value: 500, Tier: TierSS, Demand: 10, Status: "Limited", Category: CategorySkin},
}
