// This file is part of Ticcore.
//
// Ticcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ticcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ticcore.  If not, see <https://www.gnu.org/licenses/>.

package demo

import (
	"github.com/jetsetilly/ticcore/gamestate"
	"github.com/jetsetilly/ticcore/limiter"
)

// Kind of entry in the sequence table.
type Kind int

// List of valid Kind values.
const (
	Page Kind = iota
	Demo
)

func (k Kind) String() string {
	switch k {
	case Page:
		return "page"
	case Demo:
		return "demo"
	}
	return "unknown kind"
}

// Entry in the sequence table.
type Entry struct {
	Kind Kind

	// the name of the page or demo recording
	Content string

	// number of tics to show a page for
	Duration int

	// music to start when the entry begins. empty for no change
	Music string
}

// Names of content used by the sequence.
const (
	TitlePic    = "TITLEPIC"
	BFGTitlePic = "DMENUPIC"
	Credit      = "CREDIT"
	Help2       = "HELP2"

	MusicIntro  = "intro"
	MusicDoom2  = "dm2ttl"
	titleLength = 170
	pageLength  = 200
)

// the length of the title page for commercial editions
const commercialTitleLength = limiter.TicRate * 11

// Table returns the sequence table for the edition.
func Table(edition gamestate.Edition) []Entry {
	title := TitlePic
	if edition.BFG {
		title = BFGTitlePic
	}

	demo1 := Entry{Kind: Demo, Content: "demo1"}
	demo2 := Entry{Kind: Demo, Content: "demo2"}
	demo3 := Entry{Kind: Demo, Content: "demo3"}
	credit := Entry{Kind: Page, Content: Credit, Duration: pageLength}

	switch edition.Mode {
	case gamestate.Commercial:
		t := Entry{Kind: Page, Content: title, Duration: commercialTitleLength, Music: MusicDoom2}
		return []Entry{t, demo1, credit, demo2, t, demo3}

	case gamestate.Retail:
		t := Entry{Kind: Page, Content: title, Duration: titleLength, Music: MusicIntro}
		demo4 := Entry{Kind: Demo, Content: "demo4"}
		return []Entry{t, demo1, credit, demo2, credit, demo3, demo4}
	}

	t := Entry{Kind: Page, Content: title, Duration: titleLength, Music: MusicIntro}
	help := Entry{Kind: Page, Content: Help2, Duration: pageLength}
	return []Entry{t, demo1, credit, demo2, help, demo3}
}
