package tokenizer_test

import (
	"fmt"
	"strings"

	"github.com/htmlscan/htmlscan/tokenizer"
)

func ExampleTokenizer() {
	sink := &tokenizer.TokenCollector{}
	tz := tokenizer.New(strings.NewReader(`<p class="x">a&amp;b</p>`), sink)
	if err := tz.Run(); err != nil {
		panic(err)
	}

	for _, tok := range sink.Tokens() {
		fmt.Println(tok)
	}
	// Output:
	// StartTag(p class="x")
	// Character("a")
	// Character("&")
	// Character("b")
	// EndTag(p)
	// EOF(24)
}

func ExampleTokenizer_errors() {
	sink := &tokenizer.TokenCollector{}
	tz := tokenizer.New(strings.NewReader(`<p a="1" a="2">`), sink)
	if err := tz.Run(); err != nil {
		panic(err)
	}

	for _, e := range tz.Errors().Errors() {
		fmt.Println(e)
	}
	// Output:
	// offset 11: duplicate-attribute: attribute repeats an earlier attribute's name
}
