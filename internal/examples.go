package internal

// ExampleQuestions are offered to users who do not know what to ask
var ExampleQuestions = []string{
	"How many Earth-sized planets have been discovered?",
	"Show me hot Jupiters discovered by transit method",
	"Plot planet radius vs mass for nearby stars",
	"Which discovery method found the most planets?",
	"List planets in the habitable zone",
	"Show discoveries per year as a timeline",
}

// ExampleQuestion returns the n-th example, counting from 1
func ExampleQuestion(n int) (string, bool) {
	if n < 1 || n > len(ExampleQuestions) {
		return "", false
	}
	return ExampleQuestions[n-1], true
}
