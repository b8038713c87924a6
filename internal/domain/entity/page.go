package entity

// PageContent is a snapshot of the currently loaded page.
type PageContent struct {
	URL   string
	Title string
	HTML  string
}

type Screenshot struct {
	Data   []byte
	Format string
	Width  int
	Height int
}
