package testutil

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/slotgrid/internal/models"
)

// DescriptorBuilder provides fluent API for creating test card descriptors.
type DescriptorBuilder struct {
	desc models.CardDescriptor
}

func NewDescriptor() *DescriptorBuilder {
	return &DescriptorBuilder{
		desc: models.CardDescriptor{
			Title:  "Card 1",
			Target: "/page1",
			End:    Epoch.Add(time.Hour),
		},
	}
}

func (b *DescriptorBuilder) WithPosition(n int) *DescriptorBuilder {
	b.desc.Title = fmt.Sprintf("Card %d", n)
	b.desc.Target = fmt.Sprintf("/page%d", n)
	return b
}

func (b *DescriptorBuilder) WithTitle(title string) *DescriptorBuilder {
	b.desc.Title = title
	return b
}

func (b *DescriptorBuilder) WithEnd(end time.Time) *DescriptorBuilder {
	b.desc.End = end
	return b
}

// EndingIn sets the end time relative to Epoch.
func (b *DescriptorBuilder) EndingIn(d time.Duration) *DescriptorBuilder {
	b.desc.End = Epoch.Add(d)
	return b
}

func (b *DescriptorBuilder) Build() models.CardDescriptor {
	return b.desc
}
