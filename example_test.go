package backre_test

import (
	"fmt"

	"github.com/coregx/backre"
)

// ExampleCompile demonstrates basic pattern compilation and matching.
func ExampleCompile() {
	re, err := backre.Compile(`a+b`)
	if err != nil {
		panic(err)
	}
	fmt.Println(re.MatchString("xaaab"))
	// Output: true
}

// ExampleMustCompile demonstrates panic-on-error compilation.
func ExampleMustCompile() {
	re := backre.MustCompile(`foo|bar`)
	fmt.Println(re.MatchString("a bar here"))
	// Output: true
}

// ExampleRegex_Find demonstrates finding the leftmost match.
func ExampleRegex_Find() {
	re := backre.MustCompile(`a*b+bc`)
	fmt.Println(string(re.Find([]byte("xxabbbbc"))))
	// Output: abbbbc
}

// ExampleRegex_FindAll demonstrates finding all non-overlapping matches.
func ExampleRegex_FindAll() {
	re := backre.MustCompile(`a|b`)
	for _, m := range re.FindAll([]byte("xaybxa"), -1) {
		fmt.Print(string(m), " ")
	}
	fmt.Println()
	// Output: a b a
}

// ExampleRegex_MatchExact demonstrates requiring a match across the whole
// input, rather than anywhere within it.
func ExampleRegex_MatchExact() {
	re := backre.MustCompile(`a*b`)
	fmt.Println(re.MatchExact([]byte("aaab")))
	fmt.Println(re.MatchExact([]byte("aaabx")))
	// Output:
	// true
	// false
}

// Example_possessiveQuantifier demonstrates that a*+a never backtracks
// once a* has consumed all available a's, unlike ordinary greedy a*a.
func Example_possessiveQuantifier() {
	re := backre.MustCompile(`a*+a`)
	fmt.Println(re.MatchString("aa"))
	// Output: false
}

// Example_termComplement demonstrates ~ matching whatever a term does not,
// intersected here with "any three bytes" to pin the length it is judged
// over.
func Example_termComplement() {
	re := backre.MustCompile(`...&~0-9+?`)
	fmt.Println(re.MatchString("abc"))
	fmt.Println(re.MatchString("123"))
	// Output:
	// true
	// false
}
