package models

import (
	"fmt"
	"strings"
)

// Entity represents a payment party (payer or recipient) as printed on a payment order.
// Account always comes from its own region of the page; Name, INN and KPP are
// parsed out of a single free-text block.
type Entity struct {
	Name    string `json:"name" yaml:"name"`
	INN     string `json:"inn" yaml:"inn"`
	KPP     string `json:"kpp" yaml:"kpp"`
	Account string `json:"account" yaml:"account"`
}

// HasName returns true if the entity has a non-empty name
func (e Entity) HasName() bool {
	return strings.TrimSpace(e.Name) != ""
}

// String returns a string representation of the entity
func (e Entity) String() string {
	var parts []string
	if e.Name != "" {
		parts = append(parts, e.Name)
	}
	if e.INN != "" {
		parts = append(parts, "ИНН "+e.INN)
	}
	if e.KPP != "" {
		parts = append(parts, "КПП "+e.KPP)
	}
	if e.Account != "" {
		parts = append(parts, fmt.Sprintf("(%s)", e.Account))
	}
	return strings.Join(parts, " ")
}

// normalize applies the text normalization to every attribute of the entity.
func (e *Entity) normalize() {
	e.Name = NormalizeText(e.Name)
	e.INN = NormalizeText(e.INN)
	e.KPP = NormalizeText(e.KPP)
	e.Account = NormalizeText(e.Account)
}

// Bank represents the payer's or the recipient's bank.
type Bank struct {
	Name    string `json:"name" yaml:"name"`
	BIK     string `json:"bik" yaml:"bik"`
	Account string `json:"account" yaml:"account"`
}

// String returns a string representation of the bank
func (b Bank) String() string {
	var parts []string
	if b.Name != "" {
		parts = append(parts, b.Name)
	}
	if b.BIK != "" {
		parts = append(parts, "БИК "+b.BIK)
	}
	if b.Account != "" {
		parts = append(parts, fmt.Sprintf("(%s)", b.Account))
	}
	return strings.Join(parts, " ")
}

func (b *Bank) normalize() {
	b.Name = NormalizeText(b.Name)
	b.BIK = NormalizeText(b.BIK)
	b.Account = NormalizeText(b.Account)
}
