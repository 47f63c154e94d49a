package core_test

import (
	"accountbridge/internal/core"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseUnits", func() {
	DescribeTable("valid amounts",
		func(amount string, decimals int, expected string) {
			value, err := core.ParseUnits(amount, decimals)
			Expect(err).NotTo(HaveOccurred())
			Expect(value.String()).To(Equal(expected))
		},
		Entry("whole number", "5", 6, "5000000"),
		Entry("decimal number", "2.5", 6, "2500000"),
		Entry("full precision", "1.234567", 6, "1234567"),
		Entry("zero", "0", 6, "0"),
		Entry("leading dot", ".5", 6, "500000"),
		Entry("no decimals token", "42", 0, "42"),
		Entry("large amount", "1000000000", 18, "1000000000000000000000000000"),
	)

	DescribeTable("invalid amounts",
		func(amount string, decimals int) {
			_, err := core.ParseUnits(amount, decimals)
			Expect(err).To(MatchError(core.ErrInvalidAmount))
		},
		Entry("not a number", "five", 6),
		Entry("empty string", "", 6),
		Entry("negative", "-1", 6),
		Entry("too many decimal places", "1.2345678", 6),
		Entry("double dot", "1.2.3", 6),
		Entry("hex digits", "0x10", 6),
	)
})
