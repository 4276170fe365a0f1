package catalog

// mutationTable is the built-in Nessie mutation-value reference. Values are
// community quotes; "O/C" means owner's choice.
var mutationTable = []MutationRecord{
	// Basic
	{Name: "Nessie", Mutation: "No Mutation", Appraised: false, Value: "7 nessies", Weight: "N/A", Category: MutationBasic},
	{Name: "Nessie", Mutation: "No Mutation", Appraised: true, Value: "1 nessie", Weight: "N/A", Category: MutationBasic},
	{Name: "Nessie", Mutation: "No Mutation", Appraised: true, Value: "3 exalted relics", Weight: "N/A", Category: MutationBasic},
	{Name: "Nessie", Mutation: "Big", Appraised: false, Value: "14 nessies", Weight: "4k+ kg", Category: MutationBasic},
	{Name: "Nessie", Mutation: "Giant", Appraised: false, Value: "200 nessies", Weight: "8k+ kg", Category: MutationBasic},
	{Name: "Nessie", Mutation: "Giant", Appraised: false, Value: "250 nessies", Weight: "8.5k+ kg", Category: MutationBasic},
	{Name: "Nessie", Mutation: "Giant", Appraised: false, Value: "300 nessies", Weight: "9k+ kg", Category: MutationBasic},

	// Limited mutations
	{Name: "Nessie", Mutation: "Jolly", Appraised: true, Value: "15 nessies", Weight: "N/A", Category: MutationLimited},
	{Name: "Nessie", Mutation: "Festive", Appraised: true, Value: "20 nessies", Weight: "N/A", Category: MutationLimited},
	{Name: "Nessie", Mutation: "Minty", Appraised: true, Value: "50 nessies", Weight: "N/A", Category: MutationLimited},
	{Name: "Nessie", Mutation: "Sinister", Appraised: true, Value: "50 nessies", Weight: "N/A", Category: MutationLimited},
	{Name: "Nessie", Mutation: "Ghastly", Appraised: true, Value: "50 nessies", Weight: "N/A", Category: MutationLimited},
	{Name: "Nessie", Mutation: "Awesome", Appraised: true, Value: "50 nessies", Weight: "N/A", Category: MutationLimited},
	{Name: "Nessie", Mutation: "Beachy", Appraised: true, Value: "20 nessies", Weight: "N/A", Category: MutationLimited},
	{Name: "Nessie", Mutation: "Summer", Appraised: true, Value: "15 nessies", Weight: "N/A", Category: MutationLimited},
	{Name: "Nessie", Mutation: "Popsicle", Appraised: true, Value: "20 nessies", Weight: "N/A", Category: MutationLimited},
	{Name: "Nessie", Mutation: "Patriotic", Appraised: true, Value: "40 nessies", Weight: "N/A", Category: MutationLimited},
	{Name: "Nessie", Mutation: "Sinister", Appraised: false, Value: "65 nessies", Weight: "2k kg", Category: MutationLimited},
	{Name: "Nessie", Mutation: "Ghastly", Appraised: false, Value: "65 nessies", Weight: "2k kg", Category: MutationLimited},
	{Name: "Nessie", Mutation: "Sinister", Appraised: false, Value: "110 nessies", Weight: "2k+ kg", Category: MutationLimited},
	{Name: "Nessie", Mutation: "Ghastly", Appraised: false, Value: "110 nessies", Weight: "2k+ kg", Category: MutationLimited},

	// Big limited mutations
	{Name: "Nessie", Mutation: "Jolly + Big", Appraised: true, Value: "20 nessies", Weight: "N/A", Category: MutationBigLimited},
	{Name: "Nessie", Mutation: "Festive + Big", Appraised: true, Value: "30 nessies", Weight: "N/A", Category: MutationBigLimited},
	{Name: "Nessie", Mutation: "Minty + Big", Appraised: true, Value: "60 nessies", Weight: "N/A", Category: MutationBigLimited},
	{Name: "Nessie", Mutation: "Sinister + Big", Appraised: true, Value: "60 nessies", Weight: "N/A", Category: MutationBigLimited},
	{Name: "Nessie", Mutation: "Ghastly + Big", Appraised: true, Value: "60 nessies", Weight: "N/A", Category: MutationBigLimited},
	{Name: "Nessie", Mutation: "Awesome + Big", Appraised: true, Value: "60 nessies", Weight: "N/A", Category: MutationBigLimited},
	{Name: "Nessie", Mutation: "Beachy + Big", Appraised: true, Value: "30 nessies", Weight: "N/A", Category: MutationBigLimited},
	{Name: "Nessie", Mutation: "Summer + Big", Appraised: true, Value: "25 nessies", Weight: "N/A", Category: MutationBigLimited},
	{Name: "Nessie", Mutation: "Popsicle + Big", Appraised: true, Value: "30 nessies", Weight: "N/A", Category: MutationBigLimited},
	{Name: "Nessie", Mutation: "Sinister + Big", Appraised: false, Value: "250 nessies", Weight: "N/A", Category: MutationBigLimited},
	{Name: "Nessie", Mutation: "Ghastly + Big", Appraised: false, Value: "250 nessies", Weight: "N/A", Category: MutationBigLimited},

	// Giant limited mutations
	{Name: "Nessie", Mutation: "Jolly + Giant", Appraised: true, Value: "200 nessies", Weight: "N/A", Category: MutationGiantLimited},
	{Name: "Nessie", Mutation: "Festive + Giant", Appraised: true, Value: "350 nessies", Weight: "N/A", Category: MutationGiantLimited},
	{Name: "Nessie", Mutation: "Minty + Giant", Appraised: true, Value: "1000 nessies", Weight: "N/A", Category: MutationGiantLimited},
	{Name: "Nessie", Mutation: "Sinister + Giant", Appraised: true, Value: "1200 nessies", Weight: "N/A", Category: MutationGiantLimited},
	{Name: "Nessie", Mutation: "Ghastly + Giant", Appraised: true, Value: "1200 nessies", Weight: "N/A", Category: MutationGiantLimited},
	{Name: "Nessie", Mutation: "Awesome + Giant", Appraised: true, Value: "O/C (owner's choice)", Weight: "N/A", Category: MutationGiantLimited},
	{Name: "Nessie", Mutation: "Beachy + Giant", Appraised: true, Value: "O/C (owner's choice)", Weight: "N/A", Category: MutationGiantLimited},
	{Name: "Nessie", Mutation: "Summer + Giant", Appraised: true, Value: "250 nessies", Weight: "N/A", Category: MutationGiantLimited},
	{Name: "Nessie", Mutation: "Popsicle + Giant", Appraised: true, Value: "O/C (owner's choice)", Weight: "N/A", Category: MutationGiantLimited},
	{Name: "Nessie", Mutation: "Sinister + Giant", Appraised: false, Value: "O/C (owner's choice)", Weight: "N/A", Category: MutationGiantLimited},
	{Name: "Nessie", Mutation: "Ghastly + Giant", Appraised: false, Value: "O/C (owner's choice)", Weight: "N/A", Category: MutationGiantLimited},

	// S/S attributes
	{Name: "Nessie", Mutation: "Sparkling", Appraised: true, Value: "1 nessie", Weight: "N/A", Category: MutationSSAttributes},
	{Name: "Nessie", Mutation: "Shiny", Appraised: true, Value: "1 nessie", Weight: "N/A", Category: MutationSSAttributes},
	{Name: "Nessie", Mutation: "Shiny + Sparkling", Appraised: true, Value: "1 nessie", Weight: "N/A", Category: MutationSSAttributes},
	{Name: "Nessie", Mutation: "Sparkling", Appraised: false, Value: "90 nessies", Weight: "N/A", Category: MutationSSAttributes},
	{Name: "Nessie", Mutation: "Shiny", Appraised: false, Value: "90 nessies", Weight: "N/A", Category: MutationSSAttributes},
	{Name: "Nessie", Mutation: "Shiny + Sparkling", Appraised: false, Value: "O/C (est. 700+ nessies)", Weight: "N/A", Category: MutationSSAttributes},

	// Unappraised mutations
	{Name: "Nessie", Mutation: "Atlantean", Appraised: false, Value: "15 nessies", Weight: "2k+ kg", Category: MutationUnappraised},
	{Name: "Nessie", Mutation: "Translucent", Appraised: false, Value: "20 nessies", Weight: "2k kg", Category: MutationUnappraised},
	{Name: "Nessie", Mutation: "Translucent", Appraised: false, Value: "30 nessies", Weight: "2k+ kg", Category: MutationUnappraised},
	{Name: "Nessie", Mutation: "Negative", Appraised: false, Value: "20 nessies", Weight: "2k kg", Category: MutationUnappraised},
	{Name: "Nessie", Mutation: "Negative", Appraised: false, Value: "40 nessies", Weight: "2k+ kg", Category: MutationUnappraised},
	{Name: "Nessie", Mutation: "Albino", Appraised: false, Value: "20 nessies", Weight: "2k kg", Category: MutationUnappraised},
	{Name: "Nessie", Mutation: "Albino", Appraised: false, Value: "40 nessies", Weight: "2k+ kg", Category: MutationUnappraised},
	{Name: "Nessie", Mutation: "Darkened", Appraised: false, Value: "20 nessies", Weight: "2k kg", Category: MutationUnappraised},
	{Name: "Nessie", Mutation: "Darkened", Appraised: false, Value: "40 nessies", Weight: "2k+ kg", Category: MutationUnappraised},
	{Name: "Nessie", Mutation: "Glossy", Appraised: false, Value: "25 nessies", Weight: "2k kg", Category: MutationUnappraised},
	{Name: "Nessie", Mutation: "Silver", Appraised: false, Value: "45 nessies", Weight: "2k+ kg", Category: MutationUnappraised},
	{Name: "Nessie", Mutation: "Electric", Appraised: false, Value: "55 nessies", Weight: "2k+ kg", Category: MutationUnappraised},
	{Name: "Nessie", Mutation: "Frozen", Appraised: false, Value: "55 nessies", Weight: "2k+ kg", Category: MutationUnappraised},
	{Name: "Nessie", Mutation: "Mythical", Appraised: false, Value: "120 nessies", Weight: "2k+ kg", Category: MutationUnappraised},
	{Name: "Nessie", Mutation: "Midas", Appraised: false, Value: "400 nessies", Weight: "2k+ kg", Category: MutationUnappraised},

	// Unappraised big mutations
	{Name: "Nessie", Mutation: "Atlantean + Big", Appraised: false, Value: "30 nessies", Weight: "N/A", Category: MutationUnappraisedBig},
	{Name: "Nessie", Mutation: "Translucent + Big", Appraised: false, Value: "50 nessies", Weight: "N/A", Category: MutationUnappraisedBig},
	{Name: "Nessie", Mutation: "Negative + Big", Appraised: false, Value: "70 nessies", Weight: "N/A", Category: MutationUnappraisedBig},
	{Name: "Nessie", Mutation: "Albino + Big", Appraised: false, Value: "70 nessies", Weight: "N/A", Category: MutationUnappraisedBig},
	{Name: "Nessie", Mutation: "Darkened + Big", Appraised: false, Value: "70 nessies", Weight: "N/A", Category: MutationUnappraisedBig},
	{Name: "Nessie", Mutation: "Glossy + Big", Appraised: false, Value: "85 nessies", Weight: "N/A", Category: MutationUnappraisedBig},
	{Name: "Nessie", Mutation: "Silver + Big", Appraised: false, Value: "85 nessies", Weight: "N/A", Category: MutationUnappraisedBig},
	{Name: "Nessie", Mutation: "Electric + Big", Appraised: false, Value: "100 nessies", Weight: "N/A", Category: MutationUnappraisedBig},
	{Name: "Nessie", Mutation: "Frozen + Big", Appraised: false, Value: "100 nessies", Weight: "N/A", Category: MutationUnappraisedBig},
	{Name: "Nessie", Mutation: "Mythical + Big", Appraised: false, Value: "200 nessies", Weight: "N/A", Category: MutationUnappraisedBig},
	{Name: "Nessie", Mutation: "Midas + Big", Appraised: false, Value: "600 nessies", Weight: "N/A", Category: MutationUnappraisedBig},

	// Unappraised giant mutations
	{Name: "Nessie", Mutation: "Atlantean + Giant", Appraised: false, Value: "O/C (owner's choice)", Weight: "N/A", Category: MutationUnappraisedGiant},
	{Name: "Nessie", Mutation: "Translucent + Giant", Appraised: false, Value: "O/C (owner's choice)", Weight: "N/A", Category: MutationUnappraisedGiant},
	{Name: "Nessie", Mutation: "Negative + Giant", Appraised: false, Value: "4000 nessies", Weight: "N/A", Category: MutationUnappraisedGiant},
	{Name: "Nessie", Mutation: "Albino + Giant", Appraised: false, Value: "O/C (owner's choice)", Weight: "N/A", Category: MutationUnappraisedGiant},
	{Name: "Nessie", Mutation: "Darkened + Giant", Appraised: false, Value: "O/C (owner's choice)", Weight: "N/A", Category: MutationUnappraisedGiant},
	{Name: "Nessie", Mutation: "Glossy + Giant", Appraised: false, Value: "4000 nessies", Weight: "N/A", Category: MutationUnappraisedGiant},
	{Name: "Nessie", Mutation: "Silver + Giant", Appraised: false, Value: "O/C (owner's choice)", Weight: "N/A", Category: MutationUnappraisedGiant},
	{Name: "Nessie", Mutation: "Electric + Giant", Appraised: false, Value: "5000 nessies", Weight: "N/A", Category: MutationUnappraisedGiant},
	{Name: "Nessie", Mutation: "Frozen + Giant", Appraised: false, Value: "5000 nessies", Weight: "N/A", Category: MutationUnappraisedGiant},
	{Name: "Nessie", Mutation: "Mythical + Giant", Appraised: false, Value: "O/C (owner's choice)", Weight: "N/A", Category: MutationUnappraisedGiant},
	{Name: "Nessie", Mutation: "Midas + Giant", Appraised: false, Value: "O/C (owner's choice)", Weight: "N/A", Category: MutationUnappraisedGiant},

	// Unappraised S/S mutations
	{Name: "Nessie", Mutation: "Atlantean + Sparkling", Appraised: false, Value: "600 nessies", Weight: "N/A", Category: MutationUnappraisedSS},
	{Name: "Nessie", Mutation: "Atlantean + Shiny", Appraised: false, Value: "600 nessies", Weight: "N/A", Category: MutationUnappraisedSS},
	{Name: "Nessie", Mutation: "Translucent + Sparkling", Appraised: false, Value: "600 nessies", Weight: "N/A", Category: MutationUnappraisedSS},
	{Name: "Nessie", Mutation: "Translucent + Shiny", Appraised: false, Value: "600 nessies", Weight: "N/A", Category: MutationUnappraisedSS},
	{Name: "Nessie", Mutation: "Negative + Sparkling", Appraised: false, Value: "900 nessies", Weight: "N/A", Category: MutationUnappraisedSS},
	{Name: "Nessie", Mutation: "Negative + Shiny", Appraised: false, Value: "900 nessies", Weight: "N/A", Category: MutationUnappraisedSS},
	{Name: "Nessie", Mutation: "Albino + Sparkling", Appraised: false, Value: "900 nessies", Weight: "N/A", Category: MutationUnappraisedSS},
	{Name: "Nessie", Mutation: "Albino + Shiny", Appraised: false, Value: "900 nessies", Weight: "N/A", Category: MutationUnappraisedSS},
	{Name: "Nessie", Mutation: "Darkened + Sparkling", Appraised: false, Value: "900 nessies", Weight: "N/A", Category: MutationUnappraisedSS},
}
