// internal/barcodes/data.go
package barcodes

// Barcode tables for the ONT native (EXP-NBD104/114), PCR (EXP-PBC096) and
// rapid (SQK-RBK004) kits. Sequences are the 24 nt barcode cores, 5'->3'.

var nativeBarcodes = []Definition{
	{ID: 1, Name: "NB01", Seq: "CACAAAGACACCGACAACTTTCTT", Set: Native},
	{ID: 2, Name: "NB02", Seq: "ACAGACGACTACAAACGGAATCGA", Set: Native},
	{ID: 3, Name: "NB03", Seq: "CCTGGTAACTGGGACACAAGACTC", Set: Native},
	{ID: 4, Name: "NB04", Seq: "TAGGGAAACACGATAGAATCCGAA", Set: Native},
	{ID: 5, Name: "NB05", Seq: "AAGGTTACACAAACCCTGGACAAG", Set: Native},
	{ID: 6, Name: "NB06", Seq: "GACTACTTTCTGCCTTTGCGAGAA", Set: Native},
	{ID: 7, Name: "NB07", Seq: "AAGGATTCATTCCCACGGTAACAC", Set: Native},
	{ID: 8, Name: "NB08", Seq: "ACGTAACTTGGTTTGTTCCCTGAA", Set: Native},
	{ID: 9, Name: "NB09", Seq: "AACCAAGACTCGCTGTGCCTAGTT", Set: Native},
	{ID: 10, Name: "NB10", Seq: "GAGAGGACAAAGGTTTCAACGCTT", Set: Native},
	{ID: 11, Name: "NB11", Seq: "TCCATTCCCTCCGATAGATGAAAC", Set: Native},
	{ID: 12, Name: "NB12", Seq: "TCCGATTCTGCTTCTTTCTACCTG", Set: Native},
	{ID: 13, Name: "NB13", Seq: "AGAACGACTTCCATACTCGTGTGA", Set: Native},
	{ID: 14, Name: "NB14", Seq: "AACGAGTCTCTTGGGACCCATAGA", Set: Native},
	{ID: 15, Name: "NB15", Seq: "AGGTCTACCTCGCTAACACCACTG", Set: Native},
	{ID: 16, Name: "NB16", Seq: "CGTCAACTGACAGTGGTTCGTACT", Set: Native},
	{ID: 17, Name: "NB17", Seq: "ACCCTCCAGGAAAGTACCTCTGAT", Set: Native},
	{ID: 18, Name: "NB18", Seq: "CCAAACCCAACAACCTAGATAGGC", Set: Native},
	{ID: 19, Name: "NB19", Seq: "GTTCCTCGTGCAGTGTCAAGAGAT", Set: Native},
	{ID: 20, Name: "NB20", Seq: "TTGCGTCCTGTTACGAGAACTCAT", Set: Native},
	{ID: 21, Name: "NB21", Seq: "GAGCCTCTCATTGTCCGTTCTCTA", Set: Native},
	{ID: 22, Name: "NB22", Seq: "ACCACTGCCATGTATCAAAGTACG", Set: Native},
	{ID: 23, Name: "NB23", Seq: "CTTACTACCCAGTGAACCTCCTCG", Set: Native},
	{ID: 24, Name: "NB24", Seq: "GCATAGTTCTGCATGATGGGTTAG", Set: Native},
}

var pcrBarcodes = []Definition{
	{ID: 1, Name: "BC01", Seq: "AAGAAAGTTGTCGGTGTCTTTGTG", Set: PCR},
	{ID: 2, Name: "BC02", Seq: "TCGATTCCGTTTGTAGTCGTCTGT", Set: PCR},
	{ID: 3, Name: "BC03", Seq: "GAGTCTTGTGTCCCAGTTACCAGG", Set: PCR},
	{ID: 4, Name: "BC04", Seq: "TTCGGATTCTATCGTGTTTCCCTA", Set: PCR},
	{ID: 5, Name: "BC05", Seq: "CTTGTCCAGGGTTTGTGTAACCTT", Set: PCR},
	{ID: 6, Name: "BC06", Seq: "TTCTCGCAAAGGCAGAAAGTAGTC", Set: PCR},
	{ID: 7, Name: "BC07", Seq: "GTGTTACCGTGGGAATGAATCCTT", Set: PCR},
	{ID: 8, Name: "BC08", Seq: "TTCAGGGAACAAACCAAGTTACGT", Set: PCR},
	{ID: 9, Name: "BC09", Seq: "AACTAGGCACAGCGAGTCTTGGTT", Set: PCR},
	{ID: 10, Name: "BC10", Seq: "AAGCGTTGAAACCTTTGTCCTCTC", Set: PCR},
	{ID: 11, Name: "BC11", Seq: "GTTTCATCTATCGGAGGGAATGGA", Set: PCR},
	{ID: 12, Name: "BC12", Seq: "CAGGTAGAAAGAAGCAGAATCGGA", Set: PCR},
	{ID: 13, Name: "BC13", Seq: "GGTCAGAACTGAGGGGCATTTGCG", Set: PCR},
	{ID: 14, Name: "BC14", Seq: "GACAATCGACAGGGCTTAGGTTAC", Set: PCR},
	{ID: 15, Name: "BC15", Seq: "TGCAGCCCGTATCCAATGACAGCA", Set: PCR},
	{ID: 16, Name: "BC16", Seq: "TCACATTAGTAAACCTGCGAGCCG", Set: PCR},
	{ID: 17, Name: "BC17", Seq: "GTTTCAGGTACTTACTCCAGTGTC", Set: PCR},
	{ID: 18, Name: "BC18", Seq: "CCGTAAGCTGCTCAGCCTTGGTAC", Set: PCR},
	{ID: 19, Name: "BC19", Seq: "CGTTTGGTCGTGACCTACCGACTT", Set: PCR},
	{ID: 20, Name: "BC20", Seq: "CGTACAGGACGGCGTAATTGATAG", Set: PCR},
	{ID: 21, Name: "BC21", Seq: "TCCCTGCAGTCTAGGTAACTTTGA", Set: PCR},
	{ID: 22, Name: "BC22", Seq: "CTAGGCGAAGATCTGATCCTGACT", Set: PCR},
	{ID: 23, Name: "BC23", Seq: "ACATTAGAGGAAGCGGGCGGGCTT", Set: PCR},
	{ID: 24, Name: "BC24", Seq: "CAGGAACTTAACAAAGCAACGCCC", Set: PCR},
	{ID: 25, Name: "BC25", Seq: "CTGTTACATGCTAGTTGTTAATGG", Set: PCR},
	{ID: 26, Name: "BC26", Seq: "AGCAACTCCGCGGTCTTGCATCAG", Set: PCR},
	{ID: 27, Name: "BC27", Seq: "ATTAGTTGAGGCTCCTTGCATTCC", Set: PCR},
	{ID: 28, Name: "BC28", Seq: "CGTGGTCCAATCCGTTAAATTTTA", Set: PCR},
	{ID: 29, Name: "BC29", Seq: "GCGACGCGAACTTGGTGTGTATAC", Set: PCR},
	{ID: 30, Name: "BC30", Seq: "CGTAAGTGCCGCAATGATTATTGT", Set: PCR},
	{ID: 31, Name: "BC31", Seq: "AAGTAGTTATCCGACCATGGCGCT", Set: PCR},
	{ID: 32, Name: "BC32", Seq: "TTTGAAACCGTTATTAACCAGTCG", Set: PCR},
	{ID: 33, Name: "BC33", Seq: "GGGATGGGTTGAGCTTAATTAACC", Set: PCR},
	{ID: 34, Name: "BC34", Seq: "GAGTGTAGTGTATCACAGGAAGGG", Set: PCR},
	{ID: 35, Name: "BC35", Seq: "TCGCTCGTCTCAGCGACTGGTTCA", Set: PCR},
	{ID: 36, Name: "BC36", Seq: "GGTGGCCGCAAGGTCACATACTGG", Set: PCR},
	{ID: 37, Name: "BC37", Seq: "GAGATCCTCTGTGCATTCATCGCA", Set: PCR},
	{ID: 38, Name: "BC38", Seq: "CCCTCGGTTAAAGGGAGTAAAAGC", Set: PCR},
	{ID: 39, Name: "BC39", Seq: "TAGAACGCTTAACTAAGTCCTGCG", Set: PCR},
	{ID: 40, Name: "BC40", Seq: "CGTCGTGCCGTTCTAATTTAAGCA", Set: PCR},
	{ID: 41, Name: "BC41", Seq: "GGCCGACCTAAACCATGTTATCAG", Set: PCR},
	{ID: 42, Name: "BC42", Seq: "GAGCCGGCACGTTTGGTCCTGCTT", Set: PCR},
	{ID: 43, Name: "BC43", Seq: "CGGAAGCGAGCTATGGGGTATCAT", Set: PCR},
	{ID: 44, Name: "BC44", Seq: "CATAGACCATCGGAGCTCTTGTTC", Set: PCR},
	{ID: 45, Name: "BC45", Seq: "AAGACATCGATAACAGTGCATCGG", Set: PCR},
	{ID: 46, Name: "BC46", Seq: "GCTGAAGCCGAGAGAAGTTAGATC", Set: PCR},
	{ID: 47, Name: "BC47", Seq: "ACACGGCTCGGTACATAAAGACTA", Set: PCR},
	{ID: 48, Name: "BC48", Seq: "TACCCTTTGTCAAGGACCCCTGGA", Set: PCR},
	{ID: 49, Name: "BC49", Seq: "GTCCAGTCTGTGAGAGAGATTTCC", Set: PCR},
	{ID: 50, Name: "BC50", Seq: "CGGGCCATATCCTTGAGCAAAATC", Set: PCR},
	{ID: 51, Name: "BC51", Seq: "AGTAACCTCCTGGTTACTAGTTCT", Set: PCR},
	{ID: 52, Name: "BC52", Seq: "CTGTTGCGTACATCCAGGAATGGT", Set: PCR},
	{ID: 53, Name: "BC53", Seq: "GCCTTGCAAGATATGTTACCTGCC", Set: PCR},
	{ID: 54, Name: "BC54", Seq: "CAGGTCACCGCGGTGAGCAAGCAA", Set: PCR},
	{ID: 55, Name: "BC55", Seq: "CCGCAAACCAGTCACGTGTACGAC", Set: PCR},
	{ID: 56, Name: "BC56", Seq: "GGTCAACAACACTTGTACGGAACC", Set: PCR},
	{ID: 57, Name: "BC57", Seq: "GACAGCCTTCTAAGGTCCGTACTG", Set: PCR},
	{ID: 58, Name: "BC58", Seq: "TGTACTCCCATCTCAGTCGTCGCC", Set: PCR},
	{ID: 59, Name: "BC59", Seq: "CTATTTACATCACGTCTTCATGGA", Set: PCR},
	{ID: 60, Name: "BC60", Seq: "GAGTCTTTCGCATTAGCGTGGCAA", Set: PCR},
	{ID: 61, Name: "BC61", Seq: "CCGTAGGCGGGAACCATGTTATAG", Set: PCR},
	{ID: 62, Name: "BC62", Seq: "AACTGGTATTGACGACAACAGATG", Set: PCR},
	{ID: 63, Name: "BC63", Seq: "GTACATGGTTGGCAAGTGAGCATC", Set: PCR},
	{ID: 64, Name: "BC64", Seq: "CACCCCATCGACACGTGACTCTCC", Set: PCR},
	{ID: 65, Name: "BC65", Seq: "CCACCGGTGATTGGGAGCTCGTAC", Set: PCR},
	{ID: 66, Name: "BC66", Seq: "GGGTCTCAACAAGCAACGTTATTC", Set: PCR},
	{ID: 67, Name: "BC67", Seq: "GCACTTCCCTGGTCAGGGGCTTCT", Set: PCR},
	{ID: 68, Name: "BC68", Seq: "CCGTCACGCCGCTTTTATAGGTGA", Set: PCR},
	{ID: 69, Name: "BC69", Seq: "GAACACTTCGCGGCCAAATCCTCG", Set: PCR},
	{ID: 70, Name: "BC70", Seq: "ATTGCAACCAGACCCGTCCCCTGG", Set: PCR},
	{ID: 71, Name: "BC71", Seq: "ACAATCGGCTAAGCCAACCTCCCC", Set: PCR},
	{ID: 72, Name: "BC72", Seq: "TTACTCGTATGCTCGGGTGCCAAA", Set: PCR},
	{ID: 73, Name: "BC73", Seq: "CCTGGGCAAGACATCACGGGACGT", Set: PCR},
	{ID: 74, Name: "BC74", Seq: "GACGTAAAGCCCAGACGCAATCCT", Set: PCR},
	{ID: 75, Name: "BC75", Seq: "AGTAACTGTGCACATTGCCAGAAC", Set: PCR},
	{ID: 76, Name: "BC76", Seq: "TCCGGCCAGTCTTTAGAAACGATG", Set: PCR},
	{ID: 77, Name: "BC77", Seq: "CACATAGATCAAGGACTCTGAGTA", Set: PCR},
	{ID: 78, Name: "BC78", Seq: "GATGGAGTTACTATTGAGTTGCCG", Set: PCR},
	{ID: 79, Name: "BC79", Seq: "CTCTCTAACTAGGTGGGTTAGGTA", Set: PCR},
	{ID: 80, Name: "BC80", Seq: "CATACTAGATAAGTACCGTTGAGT", Set: PCR},
	{ID: 81, Name: "BC81", Seq: "CCATTAAAAGGGTGTCGCAGGTTC", Set: PCR},
	{ID: 82, Name: "BC82", Seq: "ATGTCGGTCCGGGTCTTTCCAGTT", Set: PCR},
	{ID: 83, Name: "BC83", Seq: "TTGACATAGGGCTGTCAACGTTCA", Set: PCR},
	{ID: 84, Name: "BC84", Seq: "TTTGACCGTCAATGCGCAAGTGGA", Set: PCR},
	{ID: 85, Name: "BC85", Seq: "CCTAGCCTGCTTAGGCTTGAACAT", Set: PCR},
	{ID: 86, Name: "BC86", Seq: "CGGGACGTACACTGGGCAGACCTA", Set: PCR},
	{ID: 87, Name: "BC87", Seq: "GGCCACATGTACACCACCCAGATG", Set: PCR},
	{ID: 88, Name: "BC88", Seq: "CCGGAGTGGGTTTCTTACCGCCAA", Set: PCR},
	{ID: 89, Name: "BC89", Seq: "GCGACTCACGACGAGGGGCTTCTA", Set: PCR},
	{ID: 90, Name: "BC90", Seq: "TGCAGATTCAATGAGTACACATTC", Set: PCR},
	{ID: 91, Name: "BC91", Seq: "CGCGTTCCTCGTGTTGTTTATTGA", Set: PCR},
	{ID: 92, Name: "BC92", Seq: "ACCGTCTCGAACACCTTTTCCTTT", Set: PCR},
	{ID: 93, Name: "BC93", Seq: "CATCGGGGCAATATAGCGCTTCCA", Set: PCR},
	{ID: 94, Name: "BC94", Seq: "AGCCTTCCCGACACCAATGTGGAA", Set: PCR},
	{ID: 95, Name: "BC95", Seq: "GAAAGCGGGGTCCGCGTGCTTACT", Set: PCR},
	{ID: 96, Name: "BC96", Seq: "TCTGCTCTCGTAGTGGAACAGTTA", Set: PCR},
}

// The rapid kit reuses the first twelve PCR barcode cores.
var rapidBarcodes = []Definition{
	{ID: 1, Name: "RB01", Seq: "AAGAAAGTTGTCGGTGTCTTTGTG", Set: Rapid},
	{ID: 2, Name: "RB02", Seq: "TCGATTCCGTTTGTAGTCGTCTGT", Set: Rapid},
	{ID: 3, Name: "RB03", Seq: "GAGTCTTGTGTCCCAGTTACCAGG", Set: Rapid},
	{ID: 4, Name: "RB04", Seq: "TTCGGATTCTATCGTGTTTCCCTA", Set: Rapid},
	{ID: 5, Name: "RB05", Seq: "CTTGTCCAGGGTTTGTGTAACCTT", Set: Rapid},
	{ID: 6, Name: "RB06", Seq: "TTCTCGCAAAGGCAGAAAGTAGTC", Set: Rapid},
	{ID: 7, Name: "RB07", Seq: "GTGTTACCGTGGGAATGAATCCTT", Set: Rapid},
	{ID: 8, Name: "RB08", Seq: "TTCAGGGAACAAACCAAGTTACGT", Set: Rapid},
	{ID: 9, Name: "RB09", Seq: "AACTAGGCACAGCGAGTCTTGGTT", Set: Rapid},
	{ID: 10, Name: "RB10", Seq: "AAGCGTTGAAACCTTTGTCCTCTC", Set: Rapid},
	{ID: 11, Name: "RB11", Seq: "GTTTCATCTATCGGAGGGAATGGA", Set: Rapid},
	{ID: 12, Name: "RB12", Seq: "CAGGTAGAAAGAAGCAGAATCGGA", Set: Rapid},
}
