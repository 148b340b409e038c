package arpeggio_test

import (
	"fmt"
	"log"

	"github.com/abhinav/arpeggio"
)

func Example() {
	freqs := map[string]int{"the": 12, "a": 9, "of": 5}

	tree, err := arpeggio.BuildTree(freqs, 3)
	if err != nil {
		log.Fatal(err)
	}

	codes, err := arpeggio.DeriveEncodingMap(tree, []rune("xyz"), freqs)
	if err != nil {
		log.Fatal(err)
	}

	for _, e := range codes.Entries() {
		fmt.Printf("%s %s %d\n", string(e.Code), e.Target, e.Count)
	}
	fmt.Println("cost:", codes.Cost())

	// Output:
	// x of 5
	// y a 9
	// z the 12
	// cost: 26
}

func ExampleEncodingMap_Lookup() {
	freqs := map[string]int{"north": 40, "south": 25, "east": 20, "west": 15}

	tree, err := arpeggio.BuildTreeWithSymbols(freqs, []rune("01"))
	if err != nil {
		log.Fatal(err)
	}

	codes, err := arpeggio.DeriveEncodingMap(tree, []rune("01"), freqs)
	if err != nil {
		log.Fatal(err)
	}

	for _, code := range []string{"0", "10", "110", "111", "11"} {
		if e, ok := codes.Lookup([]rune(code)); ok {
			fmt.Println(code, e.Target)
		} else {
			fmt.Println(code, "-")
		}
	}

	// Output:
	// 0 north
	// 10 south
	// 110 west
	// 111 east
	// 11 -
}
