package models

// UnknownValue is the "I have no idea" card present in every scale. It is
// excluded from numeric statistics but still counts toward consensus.
const UnknownValue = "?"

const (
	VotingSystemFibonacci   = "fibonacci"
	VotingSystemModifiedFib = "modified-fibonacci"
	VotingSystemTShirt      = "tshirt"
	VotingSystemPowersOfTwo = "powers-of-2"
)

var votingSystems = map[string][]string{
	VotingSystemFibonacci:   {"0", "1", "2", "3", "5", "8", "13", "21", "34", "55", "89", UnknownValue},
	VotingSystemModifiedFib: {"0", "0.5", "1", "2", "3", "5", "8", "13", "20", "40", "100", UnknownValue},
	VotingSystemTShirt:      {"XS", "S", "M", "L", "XL", "XXL", UnknownValue},
	VotingSystemPowersOfTwo: {"1", "2", "4", "8", "16", "32", "64", UnknownValue},
}

// TShirtOrdinals maps size letters onto numeric magnitudes so t-shirt votes
// can participate in average/median/mode.
var TShirtOrdinals = map[string]float64{
	"XS": 1, "S": 2, "M": 3, "L": 4, "XL": 5, "XXL": 6,
}

func IsValidVotingSystem(system string) bool {
	_, ok := votingSystems[system]
	return ok
}

func ScaleFor(system string) []string {
	return votingSystems[system]
}
