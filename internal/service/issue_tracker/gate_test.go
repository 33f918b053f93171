package issue_tracker

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/config"
)

var _ = Describe("Gate", func() {
	DescribeTable("resolves the allow-list",
		func(cfg config.GitHubConfig, want []string) {
			Expect(NewGate(cfg).AllowedOwners()).To(Equal(want))
		},
		Entry("explicit list wins, lowercased",
			config.GitHubConfig{AllowedRepoOwners: []string{"MyOrg", " other "}, DefaultRepoOwner: "ignored"},
			[]string{"myorg", "other"}),
		Entry("default owner when no list",
			config.GitHubConfig{DefaultRepoOwner: "CourtFormsOnline"},
			[]string{"courtformsonline"}),
		Entry("built-in fallback",
			config.GitHubConfig{},
			[]string{"suffolklitlab", "suffolklitlab-issues"}),
	)

	It("matches owners case-insensitively", func() {
		gate := NewGate(config.GitHubConfig{})
		Expect(gate.Authorize("SuffolkLitLab")).To(BeTrue())
		Expect(gate.Authorize("SUFFOLKLITLAB-ISSUES")).To(BeTrue())
		Expect(gate.Authorize("someone-else")).To(BeFalse())
		Expect(gate.Authorize("")).To(BeFalse())
	})

	It("has credentials only with a token", func() {
		Expect(NewGate(config.GitHubConfig{}).HasCredentials()).To(BeFalse())
		Expect(NewGate(config.GitHubConfig{Username: "bot"}).HasCredentials()).To(BeFalse())
		Expect(NewGate(config.GitHubConfig{Token: "ghp_x"}).HasCredentials()).To(BeTrue())
	})

	It("does not expose its internal slice", func() {
		gate := NewGate(config.GitHubConfig{})
		owners := gate.AllowedOwners()
		owners[0] = "mutated"
		Expect(gate.Authorize("suffolklitlab")).To(BeTrue())
	})
})
