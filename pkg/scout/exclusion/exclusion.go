package exclusion

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set is an immutable collection of uppercase words that must never be
// treated as abbreviations. It is built once at startup and shared
// read-only across extractor instances.
type Set struct {
	words map[string]struct{}
}

// Contains reports whether the word (case-insensitively) is excluded.
func (s *Set) Contains(word string) bool {
	_, ok := s.words[strings.ToUpper(word)]
	return ok
}

// Len returns the number of excluded words.
func (s *Set) Len() int {
	return len(s.words)
}

// Builtin returns the built-in exclusion set: English stopwords plus
// domain words that commonly appear in caps without being abbreviations.
func Builtin() *Set {
	s := &Set{words: make(map[string]struct{}, len(builtinWords))}
	for _, w := range builtinWords {
		s.words[w] = struct{}{}
	}
	return s
}

// TermFile is the on-disk exclusion list format, shared with the
// stoplist files used elsewhere in the toolchain.
type TermFile struct {
	Terms []string `yaml:"terms"`
}

// Load reads additional exclusion terms from a YAML file and merges them
// over the built-in set. The result is always a strict superset of
// Builtin(), so exclusion behavior cannot weaken when a term file is
// present.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read exclusion terms %s: %w", path, err)
	}

	var tf TermFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse exclusion terms %s: %w", path, err)
	}

	s := Builtin()
	for _, t := range tf.Terms {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t != "" {
			s.words[t] = struct{}{}
		}
	}
	return s, nil
}

// builtinWords covers basic English stopwords, spelled-out numbers,
// calendar terms, place names, and common nouns/verbs that show up in
// all-caps headings and emphasis.
var builtinWords = []string{
	// Stopwords
	"THE", "BE", "TO", "OF", "AND", "A", "IN", "THAT", "HAVE", "I",
	"IT", "FOR", "NOT", "ON", "WITH", "HE", "AS", "YOU", "DO", "AT",
	"THIS", "BUT", "HIS", "BY", "FROM", "THEY", "WE", "SAY", "HER", "SHE",
	"OR", "AN", "WILL", "MY", "ONE", "ALL", "WOULD", "THERE", "THEIR", "WHAT",
	"SO", "UP", "OUT", "IF", "ABOUT", "WHO", "GET", "WHICH", "GO", "ME",
	"WHEN", "MAKE", "CAN", "LIKE", "TIME", "NO", "JUST", "HIM", "KNOW", "TAKE",
	"PEOPLE", "INTO", "YEAR", "YOUR", "GOOD", "SOME", "COULD", "THEM", "SEE", "OTHER",
	"THAN", "THEN", "NOW", "LOOK", "ONLY", "COME", "ITS", "OVER", "THINK", "ALSO",
	"BACK", "AFTER", "USE", "TWO", "HOW", "OUR", "WORK", "FIRST", "WELL", "WAY",
	"EVEN", "NEW", "WANT", "BECAUSE", "ANY", "THESE", "GIVE", "DAY", "MOST", "US",
	"ARE", "WAS", "HAS", "HAD", "DID", "MAN", "OLD", "TOO", "LET", "PUT", "BOY",
	"SHOULD", "MUST", "MIGHT", "SHALL", "MAY", "WHERE", "WHILE", "SINCE", "UNTIL",
	"THOSE", "SUCH", "MORE", "MANY", "MUCH", "BOTH", "EACH", "EVERY", "SAME",
	"UNDER", "AGAIN", "ONCE", "HERE", "BETWEEN", "BEFORE", "DURING", "WITHOUT",
	"WITHIN", "THROUGH", "ANOTHER", "SOMETHING", "NOTHING", "EVERYTHING",
	"ANYTHING", "SOMEONE", "EVERYONE", "ANYONE", "NOBODY", "ALWAYS", "NEVER",
	"SOMETIMES", "OFTEN", "USUALLY", "ALREADY", "STILL", "YET", "ELSE", "THOUGH",
	"ALTHOUGH", "UNLESS", "EITHER", "NEITHER", "WHETHER", "HOWEVER", "THEREFORE",
	"THUS", "HENCE", "MOREOVER", "FURTHERMORE", "MEANWHILE", "OTHERWISE",
	"INDEED", "RATHER",

	// Numbers spelled out and ordinals
	"THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE", "TEN",
	"SECOND", "THIRD", "LAST", "NEXT",

	// Calendar terms
	"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY",
	"JANUARY", "FEBRUARY", "MARCH", "APRIL", "JUNE", "JULY", "AUGUST",
	"SEPTEMBER", "OCTOBER", "NOVEMBER", "DECEMBER",
	"SPRING", "SUMMER", "FALL", "AUTUMN", "WINTER",

	// Places and demonyms
	"AMERICA", "AMERICAN", "EUROPE", "EUROPEAN", "ASIA", "ASIAN", "AFRICA",
	"AFRICAN", "AUSTRALIA", "CHINA", "CHINESE", "INDIA", "INDIAN", "JAPAN",
	"JAPANESE", "KOREA", "KOREAN", "RUSSIA", "RUSSIAN", "FRANCE", "FRENCH",
	"GERMANY", "GERMAN", "ITALY", "ITALIAN", "SPAIN", "SPANISH", "CANADA",
	"CANADIAN", "MEXICO", "MEXICAN", "BRAZIL", "ENGLAND", "ENGLISH", "BRITISH",
	"IRELAND", "IRISH", "SCOTLAND", "SCOTTISH", "WALES",
	"LONDON", "PARIS", "TOKYO", "BEIJING", "DELHI", "MOSCOW", "BERLIN",
	"MADRID", "ROME",

	// Common nouns that appear in caps
	"PERSON", "WOMAN", "CHILD", "GIRL", "FAMILY", "FRIEND", "TEAM", "GROUP",
	"COMPANY", "BUSINESS", "GOVERNMENT", "WORLD", "COUNTRY", "STATE", "CITY",
	"TOWN", "PLACE", "HOME", "HOUSE", "ROOM", "OFFICE", "SCHOOL", "COLLEGE",
	"UNIVERSITY", "HOSPITAL", "CHURCH", "MARKET", "STORE", "SHOP", "BANK",
	"HOTEL", "RESTAURANT", "PARK", "STREET", "ROAD", "BUILDING", "FLOOR",
	"AREA", "REGION", "WATER", "FOOD", "MONEY", "MOMENT", "HOUR", "MINUTE",
	"WEEK", "MONTH", "THING", "PART", "PROBLEM", "QUESTION", "ANSWER", "IDEA",
	"FACT", "REASON", "RESULT", "CHANGE", "POINT", "CASE", "LEVEL", "KIND",
	"TYPE", "FORM", "SORT", "SIDE", "HAND", "HEAD", "FACE", "EYE", "BODY",
	"LIFE", "DEATH", "BIRTH", "AGE", "NAME", "WORD", "LINE", "PAGE", "BOOK",
	"STORY", "CHAPTER", "SECTION", "TITLE", "NUMBER", "AMOUNT", "PRICE",
	"COST", "VALUE", "RATE", "PERCENT", "TOTAL", "AVERAGE",

	// Common verbs that appear in caps
	"FIND", "TELL", "FEEL", "BECOME", "LEAVE", "BRING", "BEGIN", "KEEP",
	"HOLD", "WRITE", "STAND", "HEAR", "SEEM", "TURN", "SHOW", "HELP", "TALK",
	"CONTINUE", "HAPPEN", "CARRY", "MOVE", "FOLLOW", "STOP", "CREATE",
	"SPEAK", "READ", "ALLOW", "ADD", "SPEND", "GROW", "OPEN", "WALK", "WIN",
	"OFFER", "REMEMBER", "LOVE", "CONSIDER", "APPEAR", "PRODUCE", "CONTAIN",
	"REDUCE", "REQUIRE", "DEVELOP", "RECEIVE", "RETURN", "BUILD", "REMAIN",
	"INDICATE", "REACH", "EXPLAIN", "RAISE", "PASS", "SELL", "DECIDE",
	"DRAW", "SENT", "EXPECT", "STAY", "DESCRIBE", "SUGGEST", "INCLUDE",
	"VERY",
}
