package vdom

import (
	"errors"
	"testing"
)

func TestAttributeHelpers(t *testing.T) {
	tests := []struct {
		name  string
		attr  Attr
		key   string
		value string
	}{
		{"ID", ID("main"), "id", "main"},
		{"Class single", Class("card"), "class", "card"},
		{"Class multiple", Class("card", "active"), "class", "card active"},
		{"Data", Data("id", "123"), "data-id", "123"},
		{"Role", Role("button"), "role", "button"},
		{"AriaLabel", AriaLabel("Close"), "aria-label", "Close"},
		{"AriaHidden", AriaHidden(true), "aria-hidden", "true"},
		{"TabIndex negative", TabIndex(-1), "tabindex", "-1"},
		{"Href", Href("/page"), "href", "/page"},
		{"Src", Src("a.png"), "src", "a.png"},
		{"Width", Width(300), "width", "300"},
		{"Type", Type("search"), "type", "search"},
		{"For", For("email"), "for", "email"},
		{"Enctype", Enctype("multipart/form-data"), "enctype", "multipart/form-data"},
		{"Selected", Selected(), "selected", "selected"},
		{"Controls", Controls(), "controls", "controls"},
		{"Custom", Custom("hx-get", "/x"), "hx-get", "/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.key {
				t.Errorf("Key = %v, want %v", tt.attr.Key, tt.key)
			}
			if tt.attr.Value != tt.value {
				t.Errorf("Value = %v, want %v", tt.attr.Value, tt.value)
			}
		})
	}
}

func TestEmptyAttrIgnored(t *testing.T) {
	node := CreateElement("div", Attr{}, ID("x"))
	if len(node.Attrs) != 0 {
		t.Errorf("Attrs = %v, want none", node.Attrs)
	}
	if node.ID != "x" {
		t.Errorf("ID = %q, want x", node.ID)
	}
}

func TestRequiredAttr(t *testing.T) {
	if got := RequiredAttr("img", "src", "a.png"); got != Src("a.png") {
		t.Errorf("RequiredAttr = %v, want src attribute", got)
	}

	got := RequiredAttr("img", "src", "")
	err, ok := got.(error)
	if !ok {
		t.Fatalf("RequiredAttr with empty value = %T, want error", got)
	}
	if !errors.Is(err, ErrMissingRequiredAttribute) {
		t.Errorf("error %v does not match ErrMissingRequiredAttribute", err)
	}
	var missing *MissingAttrError
	if !errors.As(err, &missing) || missing.Tag != "img" || missing.Attr != "src" {
		t.Errorf("MissingAttrError = %+v", missing)
	}
}
