package main

type country struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Region string `json:"region"`
}

var countries = []country{
	{Title: "Argentina", Value: "AR", Region: "Americas"},
	{Title: "Australia", Value: "AU", Region: "Oceania"},
	{Title: "Austria", Value: "AT", Region: "Europe"},
	{Title: "Brazil", Value: "BR", Region: "Americas"},
	{Title: "Canada", Value: "CA", Region: "Americas"},
	{Title: "Denmark", Value: "DK", Region: "Europe"},
	{Title: "Finland", Value: "FI", Region: "Europe"},
	{Title: "France", Value: "FR", Region: "Europe"},
	{Title: "Germany", Value: "DE", Region: "Europe"},
	{Title: "Iceland", Value: "IS", Region: "Europe"},
	{Title: "India", Value: "IN", Region: "Asia"},
	{Title: "Ireland", Value: "IE", Region: "Europe"},
	{Title: "Japan", Value: "JP", Region: "Asia"},
	{Title: "Kenya", Value: "KE", Region: "Africa"},
	{Title: "Mexico", Value: "MX", Region: "Americas"},
	{Title: "Netherlands", Value: "NL", Region: "Europe"},
	{Title: "New Zealand", Value: "NZ", Region: "Oceania"},
	{Title: "Nigeria", Value: "NG", Region: "Africa"},
	{Title: "Norway", Value: "NO", Region: "Europe"},
	{Title: "Portugal", Value: "PT", Region: "Europe"},
	{Title: "South Africa", Value: "ZA", Region: "Africa"},
	{Title: "Spain", Value: "ES", Region: "Europe"},
	{Title: "Sweden", Value: "SE", Region: "Europe"},
	{Title: "Switzerland", Value: "CH", Region: "Europe"},
	{Title: "United Kingdom", Value: "GB", Region: "Europe"},
	{Title: "United States", Value: "US", Region: "Americas"},
}

var cities = []string{
	"Amsterdam", "Berlin", "Copenhagen", "Dublin", "Helsinki", "Lisbon",
	"London", "Madrid", "Oslo", "Paris", "Reykjavik", "Stockholm", "Vienna",
}
