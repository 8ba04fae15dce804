package lenstats

var HistFromCounts = histFromCounts
