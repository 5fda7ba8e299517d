package distance

// CatalogEntry describes one selectable metric or linkage.
type CatalogEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Default     bool   `json:"default,omitempty"`
}

var metricDescriptions = map[Metric]string{
	MetricSorensenDiceDistance:          "1 - Sørensen-Dice coefficient over character bigrams",
	MetricJaroWinklerDistance:           "1 - Jaro-Winkler similarity",
	MetricJaroDistance:                  "1 - Jaro similarity",
	MetricJaccardDistance:               "1 - shared word n-grams over the smaller n-gram set",
	MetricHammingDistance:               "differing positions; equal rune lengths only",
	MetricLevenshteinDistance:           "minimum single-rune edits",
	MetricNormalizedLevenshteinDistance: "Levenshtein distance over the longer rune length",
	MetricLevenshteinUpperBound:         "Hamming distance for equal lengths, else the longer length",
	MetricLevenshteinLowerBound:         "absolute difference of the rune lengths",
	MetricTanimotoCoefficient:           "1 - shared distinct runes over the rune union",
	MetricOverlapCoefficient:            "1 - shared distinct runes over the smaller rune set",
	MetricJaccardIndex:                  "1 - word n-gram intersection over union",
	MetricSorensenDiceIndex:             "1 - word n-gram Dice coefficient",
	MetricRatcliffObershelp:             "1 - Ratcliff/Obershelp gestalt pattern similarity",
	MetricLongestCommonSubstring:        "longer rune length minus the longest common substring",
	MetricLongestCommonSubsequence:      "longer rune length minus the longest common subsequence",
}

var linkageDescriptions = map[Linkage]string{
	LinkageSingle:       "minimum of the two child distances",
	LinkageComplete:     "maximum of the two child distances",
	LinkageAverageWPGMA: "unweighted mean of the two child distances",
	LinkageAverageUPGMA: "child distances weighted by child cluster size",
}

// MetricCatalog lists every metric in display order.
func MetricCatalog() []CatalogEntry {
	out := make([]CatalogEntry, 0, len(allMetrics))
	for _, m := range allMetrics {
		out = append(out, CatalogEntry{Name: string(m), Description: metricDescriptions[m], Default: m == DefaultMetric})
	}
	return out
}

// LinkageCatalog lists every linkage.
func LinkageCatalog() []CatalogEntry {
	ls := AllLinkages()
	out := make([]CatalogEntry, 0, len(ls))
	for _, l := range ls {
		out = append(out, CatalogEntry{Name: string(l), Description: linkageDescriptions[l], Default: l == DefaultLinkage})
	}
	return out
}

//Personal.AI order the ending
