package fishing

// Fish art from http://www.ascii-code.com/ascii-art/animals/fish.php

// Fish is one catchable species and its picture.
type Fish struct {
	Name string
	Art  []string
}

// Catalog lists the fish in the pond, in display order.
var Catalog = []Fish{
	{
		// "Cory" by Max Strandberg
		Name: "cory",
		Art: []string{
			"      /\\",
			"    _/./",
			" ,-'    `-:..-'/",
			": o )      _  (",
			"\"`-....,--; `-.\\",
			"    `'",
		},
	},
	{
		// "Whale" by Riitta Rasimus
		Name: "whale",
		Art: []string{
			"       .",
			"      \":\"",
			"    ___:____     |\"\\/\"|",
			"  ,'        `.    \\  /",
			"  |  O        \\___/  |",
			"~^~^~^~^~^~^~^~^~^~^~^~^~",
		},
	},
	{
		// "Sea Horse" by Morfina
		Name: "sea_horse",
		Art: []string{
			"      \\/)/)",
			"    _'  oo(_.-.",
			"  /'.     .---'",
			"/'-./    (",
			")     ; __\\",
			"\\_.'\\ : __|",
			"     )  _/",
			"    (  (,.",
			"     '-.-'",
		},
	},
	{
		// Art by Shanaka Dias
		Name: "shark",
		Art: []string{
			" _________         .    .",
			"(..       \\_    ,  |\\  /|",
			" \\       O  \\  /|  \\ \\/ /",
			"  \\______    \\/ |   \\  /",
			"     vvvv\\    \\ |   /  |",
			"     \\^^^^  ==   \\_/   |",
			"      `\\_   ===    \\.  |",
			"      / /\\_   \\ /      |",
			"      |/   \\_  \\|      /",
			"             \\________/",
		},
	},
}
