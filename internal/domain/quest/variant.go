package quest

import "errors"

// ErrCompletionUnsupported is returned when a completion transition is
// requested on a variant whose progress rows carry no completed state.
var ErrCompletionUnsupported = errors.New("quest variant does not track completion")

// Variant describes one quest family. Both families share the same shape and
// differ only in table names, goal column and the flags below.
type Variant struct {
	Name             string
	CatalogTable     string
	ProgressTable    string
	GoalColumn       string
	TracksCompletion bool
	SeedOnRegister   bool
	// Label is the human noun used in response messages ("Quest", "Image Quest").
	Label string
}

var (
	Distance = Variant{
		Name:           "distance",
		CatalogTable:   "quests",
		ProgressTable:  "userquests",
		GoalColumn:     "distance_goal",
		SeedOnRegister: true,
		Label:          "Quest",
	}

	Image = Variant{
		Name:             "image",
		CatalogTable:     "imagequests",
		ProgressTable:    "userimagequests",
		GoalColumn:       "image_goal",
		TracksCompletion: true,
		Label:            "Image Quest",
	}
)

// Variants lists every quest family known to the server.
func Variants() []Variant {
	return []Variant{Distance, Image}
}

// SeededOnRegister returns the variants whose catalogs are copied into a
// new user's progress at registration.
func SeededOnRegister() []Variant {
	var out []Variant
	for _, v := range Variants() {
		if v.SeedOnRegister {
			out = append(out, v)
		}
	}
	return out
}
