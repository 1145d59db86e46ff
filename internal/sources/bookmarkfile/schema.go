package bookmarkfile

// Record is a single bookmark record in the YAML file.
type Record struct {
	Icon string `yaml:"icon"`
	Abbr string `yaml:"abbr"`
	Href string `yaml:"href"`
}

// Category is one named group of bookmarks. The file structure is:
// - CategoryName: { - BookmarkName: [{ icon, abbr, href }] }
// Each bookmark name maps to a list with a single record.
type Category map[string][]map[string][]Record

// File is the root structure of a bookmarks.yaml file.
type File []Category
