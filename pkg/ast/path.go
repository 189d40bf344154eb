package ast

import (
	"fmt"
	"strconv"
)

type PathKind int

const (
	UnknownPathKind PathKind = iota
	ArrayIndex
	FieldName
)

// PathItem is one step from a node to one of its children: the field name of the child slot as
// rendered by MarshalNode, followed by an ArrayIndex item when the slot is a list.
type PathItem struct {
	Kind       PathKind
	ArrayIndex int
	FieldName  string
}

type Path []PathItem

func (p Path) Equals(another Path) bool {
	if len(p) != len(another) {
		return false
	}
	for i := range p {
		if p[i].Kind != another[i].Kind {
			return false
		}
		if p[i].Kind == ArrayIndex && p[i].ArrayIndex != another[i].ArrayIndex {
			return false
		} else if p[i].FieldName != another[i].FieldName {
			return false
		}
	}
	return true
}

// WithFieldName returns a copy of p extended by a field name step. p itself is never modified so
// that paths handed out to visitors stay valid after the walk moved on.
func (p Path) WithFieldName(name string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, PathItem{Kind: FieldName, FieldName: name})
}

func (p Path) WithArrayIndex(i int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, PathItem{Kind: ArrayIndex, ArrayIndex: i})
}

func (p Path) String() string {
	out := "["
	for i := range p {
		if i != 0 {
			out += ","
		}
		switch p[i].Kind {
		case ArrayIndex:
			out += strconv.Itoa(p[i].ArrayIndex)
		case FieldName:
			out += p[i].FieldName
		}
	}
	out += "]"
	return out
}

func (p Path) DotDelimitedString() string {
	out := ""
	for i := range p {
		if i != 0 {
			out += "."
		}
		switch p[i].Kind {
		case ArrayIndex:
			out += strconv.Itoa(p[i].ArrayIndex)
		case FieldName:
			out += p[i].FieldName
		}
	}
	return out
}

func (p Path) MarshalJSON() ([]byte, error) {
	out := []byte("[")
	for i := range p {
		if i != 0 {
			out = append(out, ',')
		}
		item, err := p[i].MarshalJSON()
		if err != nil {
			return nil, err
		}
		out = append(out, item...)
	}
	return append(out, ']'), nil
}

func (p *PathItem) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("data must not be empty")
	}
	if data[0] == '"' {
		name, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		p.Kind = FieldName
		p.FieldName = name
		return nil
	}
	out, err := strconv.ParseInt(string(data), 10, 32)
	if err != nil {
		return err
	}
	p.Kind = ArrayIndex
	p.ArrayIndex = int(out)
	return nil
}

func (p PathItem) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case ArrayIndex:
		return strconv.AppendInt(nil, int64(p.ArrayIndex), 10), nil
	case FieldName:
		return strconv.AppendQuote(nil, p.FieldName), nil
	default:
		return nil, fmt.Errorf("cannot marshal unknown PathKind")
	}
}
