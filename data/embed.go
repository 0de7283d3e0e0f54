// Package data embeds the linguistic resources used by the analysis
// pipeline: stopwords, the reference frequency corpus, the sentiment
// valence lexicon, the part-of-speech lexicon, and the entity gazetteers.
package data

import _ "embed"

//go:embed stopwords.txt
var Stopwords string

//go:embed freq.txt
var FreqList string

//go:embed sentiment.txt
var SentimentLexicon string

//go:embed postag.txt
var POSLexicon string

//go:embed names.txt
var GivenNames string

//go:embed places.txt
var Places string
