package services

import (
	"reflect"
	"testing"
)

func TestFeatureMatching(t *testing.T) {
	features := FeatureFields()

	tests := []struct {
		label string
		want  []string
	}{
		{"Fuel tank capacity", []string{"fuel_tank"}},
		{"Water tank capacity", []string{"water_tank"}},
		{"YEAR OF CONSTRUCTION", []string{"year"}},
		{"Number of cabins", []string{"cabins"}},
		{"Max people", []string{"people"}},
		{"Sail area", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := features.Match(tt.label)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Match(%q) = %v; want %v", tt.label, got, tt.want)
		}
	}
}

func TestAmbiguousLabelMatchesAll(t *testing.T) {
	d := Dictionary{
		{"fuel_tank", "fuel tank"},
		{"water_tank", "water tank"},
		{"length", "length"},
	}

	got := d.Match("Fuel tank and water tank")
	want := []string{"fuel_tank", "water_tank"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match = %v; want %v", got, want)
	}
}

func TestMixedCasePhrases(t *testing.T) {
	d := Dictionary{
		{"transit_log", "Transit Log"},
		{"skipper", "SKIPPER"},
	}

	if got := d.Match("transit log fee"); !reflect.DeepEqual(got, []string{"transit_log"}) {
		t.Errorf("Match = %v; phrases must match case-insensitively", got)
	}
	if got := d.Match("Skipper (per day)"); !reflect.DeepEqual(got, []string{"skipper"}) {
		t.Errorf("Match = %v; phrases must match case-insensitively", got)
	}
}

func TestExtraMatching(t *testing.T) {
	extras := ExtraFields()

	tests := []struct {
		label string
		want  []string
	}{
		{"Transit log", []string{"transit_log"}},
		{"Deposit insurance", []string{"deposit_insurance"}},
		{"Refundable security deposit", []string{"refund_deposit"}},
		{"Skipper (per day)", []string{"skipper"}},
		{"Champagne on arrival", nil},
	}

	for _, tt := range tests {
		got := extras.Match(tt.label)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Match(%q) = %v; want %v", tt.label, got, tt.want)
		}
	}
}
