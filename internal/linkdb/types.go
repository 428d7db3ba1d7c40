package linkdb

// Entry is one record of the link database. Field order here is the field
// order on disk.
type Entry struct {
	URI         string   `json:"uri" yaml:"uri"`
	ID          string   `json:"id" yaml:"id"`
	Description string   `json:"description" yaml:"description"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
}

// Database is the in-memory form of a link database file, in file order.
type Database []Entry

// Options describes a single insertion.
type Options struct {
	URI         string   `mapstructure:"uri"`
	ID          string   `mapstructure:"id"`
	Description string   `mapstructure:"description"`
	Keywords    []string `mapstructure:"keywords"`
	Database    string   `mapstructure:"database"` // path of the database file

	// DryRun runs every step except the final write.
	DryRun bool `mapstructure:"-"`
}

// entry builds the record Insert appends for these options.
func (o *Options) entry() Entry {
	keywords := o.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return Entry{
		URI:         o.URI,
		ID:          o.ID,
		Description: NormalizeDescription(o.Description),
		Keywords:    keywords,
	}
}
