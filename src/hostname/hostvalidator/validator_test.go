package hostvalidator_test

import (
	"github.com/Othello1111/ip4s/src/hostname"
	. "github.com/Othello1111/ip4s/src/hostname/hostvalidator"
	"github.com/go-playground/validator/v10"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type endpoint struct {
	Host    string              `validate:"required,rfc1123_hostname"`
	Aliases []string            `validate:"dive,rfc1123_hostname"`
	Target  hostname.Hostname   `validate:"required"`
	Peers   []hostname.Hostname `validate:"dive,rfc1123_hostname"`
	Port    int                 `validate:"omitempty,rfc1123_hostname"`
}

// failedTags returns the namespace and tag of each validation failure.
func failedTags(err error) map[string]string {
	tags := map[string]string{}

	for _, fe := range err.(validator.ValidationErrors) {
		tags[fe.Namespace()] = fe.Tag()
	}

	return tags
}

var _ = Describe("New", func() {
	var v *validator.Validate

	BeforeEach(func() {
		v = New()
	})

	It("accepts valid hostnames", func() {
		err := v.Struct(endpoint{
			Host:    "Example.com",
			Aliases: []string{"www.example.com", "192.168.1.1"},
			Target:  hostname.MustParse("backend.internal"),
			Peers:   []hostname.Hostname{hostname.MustParse("peer1")},
		})

		Expect(err).ShouldNot(HaveOccurred())
	})

	It("rejects invalid string fields", func() {
		err := v.Struct(endpoint{
			Host:    "example.com.",
			Aliases: []string{"www.example.com", "a..b"},
			Target:  hostname.MustParse("backend.internal"),
		})

		Expect(err).Should(HaveOccurred())
		Expect(failedTags(err)).To(Equal(map[string]string{
			"endpoint.Host":       Tag,
			"endpoint.Aliases[1]": Tag,
		}))
	})

	It("rejects a zero-value hostname in a required field", func() {
		err := v.Struct(endpoint{
			Host: "example.com",
		})

		Expect(err).Should(HaveOccurred())
		Expect(failedTags(err)).To(Equal(map[string]string{
			"endpoint.Target": "required",
		}))
	})

	It("rejects zero-value hostnames in a slice", func() {
		err := v.Struct(endpoint{
			Host:   "example.com",
			Target: hostname.MustParse("backend.internal"),
			Peers:  []hostname.Hostname{{}},
		})

		Expect(err).Should(HaveOccurred())
		Expect(failedTags(err)).To(Equal(map[string]string{
			"endpoint.Peers[0]": Tag,
		}))
	})

	It("rejects fields that are not strings", func() {
		err := v.Struct(endpoint{
			Host:   "example.com",
			Target: hostname.MustParse("backend.internal"),
			Port:   53,
		})

		Expect(err).Should(HaveOccurred())
		Expect(failedTags(err)).To(Equal(map[string]string{
			"endpoint.Port": Tag,
		}))
	})
})

var _ = Describe("Register", func() {
	It("adds the tag to an existing validator", func() {
		v := validator.New()
		Expect(Register(v)).To(Succeed())

		Expect(v.Var("example.com", Tag)).To(Succeed())
		Expect(v.Var("-example.com", Tag)).NotTo(Succeed())
	})
})
