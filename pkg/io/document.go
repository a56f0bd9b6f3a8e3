package io

import (
	"encoding/json"
	"fmt"

	"github.com/blockforge/blockforge/pkg/errors"
	"github.com/blockforge/blockforge/pkg/model"
)

// Document is the canonical snapshot format for block diagram models.
// Used for file persistence, API payloads, and snapshot store backends.
// The bson tags make the same type storable as a MongoDB document.
type Document struct {
	Blocks      []BlockRecord      `json:"blocks" bson:"blocks"`
	Connections []ConnectionRecord `json:"connections" bson:"connections"`
}

// BlockRecord is the wire form of a block, ports embedded.
type BlockRecord struct {
	ID               string       `json:"id" bson:"id"`
	Type             string       `json:"type" bson:"type"`
	Name             string       `json:"name" bson:"name"`
	X                float64      `json:"x" bson:"x"`
	Y                float64      `json:"y" bson:"y"`
	Width            float64      `json:"width" bson:"width"`
	Height           float64      `json:"height" bson:"height"`
	ParentID         *string      `json:"parent_id" bson:"parent_id"`
	Children         []string     `json:"children" bson:"children"`
	Ports            []PortRecord `json:"ports" bson:"ports"`
	Collapsed        bool         `json:"collapsed" bson:"collapsed"`
	ShowContent      bool         `json:"show_content" bson:"show_content"`
	HeaderHeight     float64      `json:"header_height" bson:"header_height"`
	PortSectionWidth float64      `json:"port_section_width" bson:"port_section_width"`
	Padding          float64      `json:"padding" bson:"padding"`
	ChildSpacing     float64      `json:"child_spacing" bson:"child_spacing"`
}

// requiredBlockFields are the keys every block record must carry. Zero
// values are legal, absent keys are not.
var requiredBlockFields = []string{"id", "type", "name", "x", "y"}

// UnmarshalJSON decodes a block record and rejects records missing a
// required field. encoding/json leaves absent keys at their zero value,
// which would otherwise turn a truncated record into an unnamed block
// at the origin.
func (r *BlockRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, field := range requiredBlockFields {
		if _, ok := raw[field]; !ok {
			return fmt.Errorf("block record: missing required field %q", field)
		}
	}
	type plain BlockRecord
	return json.Unmarshal(data, (*plain)(r))
}

// PortRecord is the wire form of a port.
type PortRecord struct {
	ID     string  `json:"id" bson:"id"`
	Name   string  `json:"name" bson:"name"`
	Side   string  `json:"side" bson:"side"`
	Offset float64 `json:"offset" bson:"offset"`
}

// ConnectionRecord is the wire form of a connection.
type ConnectionRecord struct {
	ID        string  `json:"id" bson:"id"`
	FromBlock string  `json:"from_block" bson:"from_block"`
	ToBlock   string  `json:"to_block" bson:"to_block"`
	FromPort  *string `json:"from_port" bson:"from_port"`
	ToPort    *string `json:"to_port" bson:"to_port"`
}

// FromModel converts a model to its snapshot document. Blocks are
// emitted in creation order, connections in insertion order, so the
// output is deterministic for identical models.
func FromModel(m *model.Model) Document {
	blocks := m.Blocks()
	doc := Document{
		Blocks:      make([]BlockRecord, len(blocks)),
		Connections: make([]ConnectionRecord, 0, m.ConnectionCount()),
	}

	for i, b := range blocks {
		rec := BlockRecord{
			ID:               b.ID,
			Type:             string(b.Kind),
			Name:             b.Name,
			X:                b.X,
			Y:                b.Y,
			Width:            b.Width,
			Height:           b.Height,
			ParentID:         optional(b.ParentID),
			Children:         append([]string{}, b.Children...),
			Ports:            make([]PortRecord, len(b.Ports)),
			Collapsed:        b.Collapsed,
			ShowContent:      b.ShowContent,
			HeaderHeight:     b.HeaderHeight,
			PortSectionWidth: b.PortSectionWidth,
			Padding:          b.Padding,
			ChildSpacing:     b.ChildSpacing,
		}
		for j, p := range b.Ports {
			rec.Ports[j] = PortRecord{ID: p.ID, Name: p.Name, Side: string(p.Side), Offset: p.Offset}
		}
		doc.Blocks[i] = rec
	}

	for _, c := range m.Connections() {
		doc.Connections = append(doc.Connections, ConnectionRecord{
			ID:        c.ID,
			FromBlock: c.FromBlock,
			ToBlock:   c.ToBlock,
			FromPort:  optional(c.FromPort),
			ToPort:    optional(c.ToPort),
		})
	}

	return doc
}

// ToModel builds a fresh model from a snapshot document. The document is
// validated first, so either a complete model is returned or nothing is
// built — a failed import never leaves a partial store behind. ID
// counters are reseeded from the loaded IDs.
//
// Errors carry the MALFORMED_SNAPSHOT code.
func ToModel(doc Document) (*model.Model, error) {
	if err := validate(doc); err != nil {
		return nil, err
	}

	blocks := make([]model.Block, len(doc.Blocks))
	for i, rec := range doc.Blocks {
		b := model.Block{
			ID:               rec.ID,
			Kind:             model.Kind(rec.Type),
			Name:             rec.Name,
			X:                rec.X,
			Y:                rec.Y,
			Width:            rec.Width,
			Height:           rec.Height,
			ParentID:         deref(rec.ParentID),
			Children:         append([]string{}, rec.Children...),
			Ports:            make([]model.Port, len(rec.Ports)),
			Collapsed:        rec.Collapsed,
			ShowContent:      rec.ShowContent,
			HeaderHeight:     rec.HeaderHeight,
			PortSectionWidth: rec.PortSectionWidth,
			Padding:          rec.Padding,
			ChildSpacing:     rec.ChildSpacing,
		}
		for j, p := range rec.Ports {
			b.Ports[j] = model.Port{ID: p.ID, Name: p.Name, Side: model.Side(p.Side), Offset: p.Offset}
		}
		blocks[i] = b
	}

	conns := make([]model.Connection, len(doc.Connections))
	for i, rec := range doc.Connections {
		conns[i] = model.Connection{
			ID:        rec.ID,
			FromBlock: rec.FromBlock,
			ToBlock:   rec.ToBlock,
			FromPort:  deref(rec.FromPort),
			ToPort:    deref(rec.ToPort),
		}
	}

	m, err := model.Restore(blocks, conns)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedSnapshot, err, "restore snapshot")
	}
	return m, nil
}

// validate checks the structural requirements of a snapshot document:
// IDs present, block types and port sides known, connection endpoints
// named.
func validate(doc Document) error {
	for i, b := range doc.Blocks {
		if b.ID == "" {
			return errors.New(errors.ErrCodeMalformedSnapshot, "block %d: missing id", i)
		}
		if !model.Kind(b.Type).Valid() {
			return errors.New(errors.ErrCodeMalformedSnapshot, "block %s: unknown type %q", b.ID, b.Type)
		}
		for j, p := range b.Ports {
			if p.ID == "" {
				return errors.New(errors.ErrCodeMalformedSnapshot, "block %s: port %d: missing id", b.ID, j)
			}
			if !model.Side(p.Side).Valid() {
				return errors.New(errors.ErrCodeMalformedSnapshot, "port %s: unknown side %q", p.ID, p.Side)
			}
		}
	}
	for i, c := range doc.Connections {
		if c.ID == "" {
			return errors.New(errors.ErrCodeMalformedSnapshot, "connection %d: missing id", i)
		}
		if c.FromBlock == "" || c.ToBlock == "" {
			return errors.New(errors.ErrCodeMalformedSnapshot, "connection %s: missing endpoint block", c.ID)
		}
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// String implements fmt.Stringer for quick logging of document shape.
func (d Document) String() string {
	return fmt.Sprintf("snapshot{blocks: %d, connections: %d}", len(d.Blocks), len(d.Connections))
}
