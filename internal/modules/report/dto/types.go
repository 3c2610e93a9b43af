package dto

type Export struct {
	Path  string
	Pages int
}
