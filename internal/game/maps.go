package game

import "fmt"

// builtinMap pairs a maze body with its menu metadata.
type builtinMap struct {
	name        string
	description string
	musicTrack  int
	body        string
}

var builtinMaps = []builtinMap{
	{
		name:        "Old Vaults",
		description: "A small crypt to find your feet in",
		musicTrack:  0,
		body: `++++++++++++++++
+p      |      +
+ ++++  |  ++  +
+ +  W  |   +  +
+ +  ++++ C +  +
+ +     +  ++  +
+ ++++  +      +
+    +  ++++++ +
+ G  +     P   +
+ ++++++++ ++ ++
+         + g  +
++++++++++++++++`,
	},
	{
		name:        "Red Labyrinth",
		description: "Long corridors, short tempers",
		musicTrack:  1,
		body: `111111111111111111111111
1p   1     W    1      1
1 11 1 111111 1 1 1111 1
1 11 1    C 1 1 1    1 1
1    11111  1 1 1111 1 1
111     P1  1 1      1 1
1   111111  1 11111111 1
1 1 1    G  1        C 1
1 1 1 111111111 11111  1
1 1 1         1 1   W  1
1 1 11111 111 1 1 111111
1 1     1 1 W 1 1      1
1 11111 1 1   1 11111  1
1     1 1 11111     1 g1
1  G  1     P       1  1
111111111111111111111111`,
	},
	{
		name:        "Sunken Keep",
		description: "Mixed stonework and too many eyes",
		musicTrack:  2,
		body: `222222222222222222222222
2p    3        |     W 2
2 333 3 3333333| 33333 2
2 3 C 3 3      |     3 2
2 3 333 3 3333 |3333 3 2
2 3     3    3 2   3 3 2
2 33333 3333 3 2 3 3 3 2
2     3    3 3 2 3   3 2
2 333 3333 3 3 2 33333 2
2 3 P    3 3 C 2     G 2
2 3 3333 3 3 333333333 2
2 3 3  W 3 3         3 2
2 3 3333 3 333333333 3 2
2 3      3         3 3 2
2 33333333 3333333 3 3 2
2        P 3     3   3 2
2 33333333 3  g  3 333 2
222222222222222222222222`,
	},
}

// BuiltinLevels parses the shipped maps. The shipped bodies are fixed
// at compile time, so a parse failure here is a programming error and
// panics rather than returning.
func BuiltinLevels() []*Level {
	out := make([]*Level, 0, len(builtinMaps))
	for _, m := range builtinMaps {
		lvl, err := ParseLevel(m.name, m.body)
		if err != nil {
			panic(fmt.Sprintf("builtin map: %v", err))
		}
		lvl.Description = m.description
		lvl.MusicTrack = m.musicTrack
		out = append(out, lvl)
	}
	return out
}
