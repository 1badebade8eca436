package sentiment

import "sort"

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var positiveWords = set(
	// english
	"love", "loved", "lovely", "like", "happy", "glad", "good", "great", "nice",
	"best", "awesome", "amazing", "beautiful", "wonderful", "excellent", "fantastic",
	"cool", "cute", "fun", "enjoy", "joy", "yay", "blessed", "proud", "perfect",
	"sweet", "kind", "favorite", "thanks", "thank", "grateful", "excited", "wow",
	// filipino
	"mahal", "masaya", "saya", "maganda", "ganda", "magaling", "galing", "salamat",
	"masarap", "sarap", "kilig", "astig", "ayos", "mabait", "bait", "pogi", "gwapo",
	"natutuwa", "tuwa", "panalo", "lodi", "petmalu", "werpa", "sanaol",
	// slang spellings
	"luv", "lab", "gud", "gr8", "nyc", "tnx", "ty", "salamuch", "mwah", "haha", "hehe",
)

var negativeWords = set(
	// english
	"hate", "hated", "bad", "sad", "terrible", "awful", "angry", "mad", "worst",
	"horrible", "ugly", "annoying", "boring", "disgusting", "stupid", "cry", "hurt",
	"pain", "upset", "disappointed", "sick", "tired", "lonely", "fail", "broken",
	// filipino
	"galit", "malungkot", "lungkot", "pangit", "panget", "inis", "nakakainis",
	"kainis", "badtrip", "sakit", "masakit", "iyak", "umiiyak", "bwisit", "buwisit",
	"ayaw", "ayoko", "pagod", "sawa", "takot", "bobo", "tanga", "kadiri", "hirap",
	"nakakaasar", "asar",
	// slang spellings
	"h8", "sux", "bv", "pgod", "kainiz",
)
