package rules_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/lintguard/internal/rules"
)

var _ = Describe("Catalog", func() {
	Describe("NewCatalog", func() {
		It("should index descriptors by identifier and alias", func() {
			catalog, err := rules.NewCatalog([]rules.Descriptor{
				{ID: "todo_comment", Aliases: []string{"todo", "fixme"}},
				{ID: "line_length"},
			})
			Expect(err).NotTo(HaveOccurred())

			descriptor, ok := catalog.Lookup("todo")
			Expect(ok).To(BeTrue())
			Expect(descriptor.ID).To(Equal("todo_comment"))

			descriptor, ok = catalog.Lookup("line_length")
			Expect(ok).To(BeTrue())
			Expect(descriptor.ID).To(Equal("line_length"))

			_, ok = catalog.Lookup("nope")
			Expect(ok).To(BeFalse())
		})

		It("should fail when an alias collides with another rule", func() {
			_, err := rules.NewCatalog([]rules.Descriptor{
				{ID: "todo_comment", Aliases: []string{"todo"}},
				{ID: "fixme_comment", Aliases: []string{"todo"}},
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(`"todo"`))
			Expect(err.Error()).To(ContainSubstring("todo_comment"))
			Expect(err.Error()).To(ContainSubstring("fixme_comment"))
		})

		It("should fail when a canonical identifier is reused", func() {
			_, err := rules.NewCatalog([]rules.Descriptor{
				{ID: "line_length"},
				{ID: "line_length"},
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Descriptors", func() {
		It("should return descriptors ordered by identifier", func() {
			catalog, err := rules.NewCatalog([]rules.Descriptor{
				{ID: "zebra_rule"},
				{ID: "alpha_rule"},
			})
			Expect(err).NotTo(HaveOccurred())

			descriptors := catalog.Descriptors()
			Expect(descriptors).To(HaveLen(2))
			Expect(descriptors[0].ID).To(Equal("alpha_rule"))
			Expect(descriptors[1].ID).To(Equal("zebra_rule"))
		})
	})

	Describe("AllValidIdentifiers", func() {
		It("should include canonical identifiers and aliases, sorted", func() {
			catalog, err := rules.NewCatalog([]rules.Descriptor{
				{ID: "todo_comment", Aliases: []string{"todo"}},
				{ID: "line_length"},
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(catalog.AllValidIdentifiers()).To(Equal([]string{
				"line_length", "todo", "todo_comment",
			}))
		})
	})

	Describe("Builtin", func() {
		It("should build without identifier collisions", func() {
			Expect(func() { rules.Builtin() }).NotTo(Panic())
		})

		It("should resolve deprecated aliases", func() {
			catalog := rules.Builtin()

			descriptor, ok := catalog.Lookup("fixme")
			Expect(ok).To(BeTrue())
			Expect(descriptor.ID).To(Equal("todo_comment"))
		})

		It("should mark analyzer rules", func() {
			catalog := rules.Builtin()

			descriptor, ok := catalog.Lookup("unused_import")
			Expect(ok).To(BeTrue())
			Expect(descriptor.Analyzer).To(BeTrue())
			Expect(descriptor.OptIn).To(BeTrue())
		})
	})
})

var _ = Describe("Descriptor", func() {
	Describe("AllIdentifiers", func() {
		It("should return the canonical identifier first", func() {
			descriptor := rules.Descriptor{
				ID:      "todo_comment",
				Aliases: []string{"todo", "fixme"},
			}

			Expect(descriptor.AllIdentifiers()).To(Equal([]string{
				"todo_comment", "todo", "fixme",
			}))
		})

		It("should handle descriptors without aliases", func() {
			descriptor := rules.Descriptor{ID: "line_length"}

			Expect(descriptor.AllIdentifiers()).To(Equal([]string{"line_length"}))
		})
	})
})
