package ui

// Presenter receives every render update. The desktop shell implements it
// with frontend events; tests record the calls.
type Presenter interface {
	Busy(busy bool)
	ShowProfile(card ProfileCard)
	AppendMatches(page MatchPage)
	ShowLoadMore(visible bool)
	ShowView(view ViewName, detail *DetailView)
	ShowError(message string)
	Notice(message string)
}
