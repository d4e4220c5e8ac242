package config_test

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/lintguard/internal/config"
)

var _ = Describe("ResolveRuleConfigs", func() {
	It("should resolve a rule configured under its canonical identifier", func() {
		raw := config.RawConfig{
			"line_length": map[string]any{"max": 120},
		}

		resolved, err := config.ResolveRuleConfigs(raw, testCatalog())
		Expect(err).NotTo(HaveOccurred())
		Expect(resolved).To(HaveKey("line_length"))
		Expect(resolved["line_length"]).To(Equal(map[string]any{"max": 120}))
	})

	It("should resolve a rule configured under a deprecated alias", func() {
		raw := config.RawConfig{
			"todo": map[string]any{"severity": "warning"},
		}

		resolved, err := config.ResolveRuleConfigs(raw, testCatalog())
		Expect(err).NotTo(HaveOccurred())
		Expect(resolved).To(HaveKey("todo_comment"))
		Expect(resolved["todo_comment"]).To(Equal(map[string]any{"severity": "warning"}))
	})

	It("should skip rules that are not configured", func() {
		resolved, err := config.ResolveRuleConfigs(config.RawConfig{}, testCatalog())
		Expect(err).NotTo(HaveOccurred())
		Expect(resolved).To(BeEmpty())
	})

	It("should fail when a rule is configured under two of its keys", func() {
		raw := config.RawConfig{
			"todo_comment": map[string]any{"severity": "warning"},
			"todo":         map[string]any{"severity": "error"},
		}

		_, err := config.ResolveRuleConfigs(raw, testCatalog())
		Expect(err).To(HaveOccurred())

		var duplicated *config.DuplicatedRuleConfigError
		Expect(errors.As(err, &duplicated)).To(BeTrue())
		Expect(duplicated.ID).To(Equal("todo_comment"))
		Expect(duplicated.Aliases).To(Equal([]string{"todo"}))
		Expect(err.Error()).To(ContainSubstring("todo_comment"))
		Expect(err.Error()).To(ContainSubstring("todo"))
	})

	It("should still resolve other rules in isolation before failing", func() {
		raw := config.RawConfig{
			"missing_docs": map[string]any{},
			"valid_docs":   map[string]any{},
			"line_length":  map[string]any{"max": 100},
		}

		_, err := config.ResolveRuleConfigs(raw, testCatalog())

		var duplicated *config.DuplicatedRuleConfigError
		Expect(errors.As(err, &duplicated)).To(BeTrue())
		Expect(duplicated.ID).To(Equal("missing_docs"))
	})
})
