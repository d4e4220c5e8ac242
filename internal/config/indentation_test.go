package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/lintguard/internal/config"
)

var _ = Describe("ParseIndentation", func() {
	It("should parse the string tabs", func() {
		style, ok := config.ParseIndentation("tabs")
		Expect(ok).To(BeTrue())
		Expect(style.UseTabs).To(BeTrue())
		Expect(style.String()).To(Equal("tabs"))
	})

	It("should parse a positive integer as spaces", func() {
		style, ok := config.ParseIndentation(2)
		Expect(ok).To(BeTrue())
		Expect(style.UseTabs).To(BeFalse())
		Expect(style.Width).To(Equal(2))
		Expect(style.String()).To(Equal("2 spaces"))
	})

	It("should parse an int64 from the TOML decoder", func() {
		style, ok := config.ParseIndentation(int64(8))
		Expect(ok).To(BeTrue())
		Expect(style.Width).To(Equal(8))
	})

	It("should parse a whole float", func() {
		style, ok := config.ParseIndentation(4.0)
		Expect(ok).To(BeTrue())
		Expect(style.Width).To(Equal(4))
	})

	It("should reject other strings", func() {
		_, ok := config.ParseIndentation("four")
		Expect(ok).To(BeFalse())
	})

	It("should reject non-positive widths", func() {
		_, ok := config.ParseIndentation(0)
		Expect(ok).To(BeFalse())

		_, ok = config.ParseIndentation(-2)
		Expect(ok).To(BeFalse())
	})

	It("should reject fractional widths", func() {
		_, ok := config.ParseIndentation(2.5)
		Expect(ok).To(BeFalse())
	})

	It("should reject unrelated types", func() {
		_, ok := config.ParseIndentation([]any{"tabs"})
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("DefaultIndentation", func() {
	It("should be four spaces", func() {
		Expect(config.DefaultIndentation.UseTabs).To(BeFalse())
		Expect(config.DefaultIndentation.Width).To(Equal(4))
	})
})
