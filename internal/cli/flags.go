package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	Input   string `long:"input" description:"Path to the history export (overrides config)"`
	Format  string `long:"format" description:"Input format: takeout | chrome (overrides config)"`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Report dropped records and timings to stderr"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// DomainsCommand — report time spent per domain.
type DomainsCommand struct {
	Domain    []string `long:"domain" description:"Restrict to a registrable domain (repeatable)"`
	Subdomain []string `long:"subdomain" description:"Restrict to a full host (repeatable)"`
	GroupBy   string   `long:"groupby" description:"Group rows by domain or subdomain" choice:"domain" choice:"subdomain" default:"domain"`
	ByMonth   bool     `long:"by-month" description:"Break rows down by year and month"`
	From      string   `long:"from" description:"Inclusive lower date bound (YYYY-MM-DD)"`
	To        string   `long:"to" description:"Inclusive upper date bound (YYYY-MM-DD)"`
	Cap       float64  `long:"cap" description:"Cap per-page dwell seconds; 0 disables" default:"-1" default-mask:"from config"`
	Policy    string   `long:"policy" description:"Successor policy: global | per-domain" choice:"global" choice:"per-domain"`
	Export    string   `long:"export" description:"Output: console | csv | tsv" default:"console"`

	globals *GlobalFlags
	version string
}

// RandomCommand — report time spent on one randomly picked domain.
type RandomCommand struct {
	ByMonth bool   `long:"by-month" description:"Break rows down by year and month"`
	Seed    *int64 `long:"seed" description:"Fix the random seed for a reproducible pick"`
	Export  string `long:"export" description:"Output: console | csv | tsv" default:"console"`

	globals *GlobalFlags
	version string
}

// ExportCommand — write the full per-host, per-month breakdown to a file.
type ExportCommand struct {
	Format string `long:"export-format" description:"File format: csv | tsv" default-mask:"from config"`
	Dir    string `long:"dir" description:"Destination directory" default-mask:"from config"`

	globals *GlobalFlags
	version string
}

// StatusCommand — show input health, totals, and top domains by time spent.
type StatusCommand struct {
	Top int `long:"top" description:"How many top domains to show" default:"10"`

	globals *GlobalFlags
	version string
}
