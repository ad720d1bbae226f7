// Package catalog holds the ordered pattern tables the converter applies to
// each line. Category order is the only precedence mechanism the engine has,
// so the catalog is built from slices, never maps, and is read-only after
// construction.
package catalog

import (
	m "github.com/mouse-blink/vbs2js/internal/model"
)

// Catalog is the immutable, ordered set of rule categories.
type Catalog struct {
	categories []m.Category
}

// New builds the catalog in its fixed evaluation order:
// Variable -> Object-Creation -> Function/Procedure -> Control-Structure ->
// Method/Built-in-call -> Operator.
func New() *Catalog {
	return &Catalog{
		categories: []m.Category{
			{Name: m.CategoryVariable, Rules: variableRules()},
			{Name: m.CategoryObject, Rules: objectRules()},
			{Name: m.CategoryFunction, Rules: functionRules()},
			{Name: m.CategoryControl, Rules: controlRules()},
			{Name: m.CategoryMethod, Rules: methodRules()},
			{Name: m.CategoryOperator, Rules: operatorRules(), ApplyAll: true},
		},
	}
}

// Categories returns the categories in evaluation order. Callers must treat
// the returned slice as read-only.
func (c *Catalog) Categories() []m.Category {
	return c.categories
}

// Category looks up a single category by name. The boolean reports whether the
// name is known.
func (c *Catalog) Category(name m.CategoryName) (m.Category, bool) {
	for _, cat := range c.categories {
		if cat.Name == name {
			return cat, true
		}
	}

	return m.Category{}, false
}
