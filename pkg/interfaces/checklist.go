package interfaces

import "github.com/google/uuid"

// Checklist models a freestanding planning document: Markdown task lists
// grouped under headings, with no frontmatter and no relationship to blog
// documents.
type Checklist struct {
	// ID is a deterministic identifier derived from the document path.
	ID       uuid.UUID
	Path     string
	Sections []ChecklistSection
}

// ChecklistSection groups task entries under the heading that precedes them.
// Items appearing before any heading land in a section with an empty title.
type ChecklistSection struct {
	Title string
	Level int
	Items []ChecklistItem
}

// ChecklistItem is a single task entry with its completion state.
type ChecklistItem struct {
	Text string
	Done bool
}

// ChecklistStats summarises completion across a checklist or a section.
type ChecklistStats struct {
	Total int
	Done  int
}

// Stats aggregates completion counts across every section.
func (c *Checklist) Stats() ChecklistStats {
	var stats ChecklistStats
	if c == nil {
		return stats
	}
	for _, section := range c.Sections {
		sectionStats := section.Stats()
		stats.Total += sectionStats.Total
		stats.Done += sectionStats.Done
	}
	return stats
}

// Stats counts completed and pending entries in the section.
func (s ChecklistSection) Stats() ChecklistStats {
	stats := ChecklistStats{Total: len(s.Items)}
	for _, item := range s.Items {
		if item.Done {
			stats.Done++
		}
	}
	return stats
}
