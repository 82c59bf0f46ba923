package models

// Location is a member of the fixed Limpopo town list. Values outside the
// list are rejected at the validation boundary.
type Location string

// Category is a member of the fixed ad category list.
type Category string

// FilterAll is the sentinel the listing endpoint accepts to mean
// "no filter on this field".
const FilterAll = "All"

var Locations = []Location{
	"Polokwane", "Makhado (Louis Trichardt)", "Giyani", "Thohoyandou",
	"Tzaneen", "Mokopane", "Lephalale", "Musina", "Bela-Bela", "Modimolle",
	"Lebowakgomo", "Marble Hall", "Dendron", "Ga-Kgapane", "Sekhukhune",
}

var Categories = []Category{
	"Men Seeking Women",
	"Women Seeking Men",
	"Men Seeking Men",
	"Women Seeking Women",
	"Casual Encounters",
	"Adult Services",
}

func (l Location) Valid() bool {
	for _, v := range Locations {
		if l == v {
			return true
		}
	}
	return false
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// LocationStrings returns the location list for the reference endpoint.
func LocationStrings() []string {
	out := make([]string, len(Locations))
	for i, l := range Locations {
		out[i] = string(l)
	}
	return out
}

// CategoryStrings returns the category list for the reference endpoint.
func CategoryStrings() []string {
	out := make([]string, len(Categories))
	for i, c := range Categories {
		out[i] = string(c)
	}
	return out
}
