package codebooktest

import (
	"fmt"
	"strings"

	"github.com/abhinav/arpeggio/internal/codebook"
	"github.com/golang/mock/gomock"
)

// BookMatcher is a gomock matcher that matches code books
// by their code words and targets.
//
// Codes maps each target to its code word,
// with the symbols of the code word joined together.
type BookMatcher struct {
	Codes map[string]string
}

var _ gomock.Matcher = BookMatcher{}

func (m BookMatcher) String() string {
	return fmt.Sprintf("code book %v", m.Codes)
}

// Matches reports whether the provided code book matches.
func (m BookMatcher) Matches(x interface{}) bool {
	book, ok := x.(*codebook.Book)
	if !ok || book.Len() != len(m.Codes) {
		return false
	}

	for _, e := range book.Entries() {
		want, ok := m.Codes[e.Target]
		if !ok || want != strings.Join(e.Code, "") {
			return false
		}
	}
	return true
}
