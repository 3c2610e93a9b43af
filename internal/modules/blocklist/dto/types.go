package dto

import "time"

type AddInput struct {
	UserID   string
	Websites []string
	Apps     []string
}

type EntryOutput struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

type AddOutput struct {
	Inserted   []EntryOutput `json:"inserted"`
	Duplicates []EntryOutput `json:"duplicates"`
}
