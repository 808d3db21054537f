package logging

import (
	"bytes"
	"encoding/json"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
)

var _ = Describe("ParseLevel", func() {
	DescribeTable("maps names case-insensitively",
		func(name string, level zerolog.Level) {
			Expect(ParseLevel(name)).To(Equal(level))
		},
		Entry("debug", "debug", zerolog.DebugLevel),
		Entry("upper case", "WARN", zerolog.WarnLevel),
		Entry("padded", " error ", zerolog.ErrorLevel),
		Entry("none", "none", zerolog.Disabled),
		Entry("unknown falls back to info", "loud", zerolog.InfoLevel),
		Entry("empty falls back to info", "", zerolog.InfoLevel),
	)
})

var _ = Describe("writer", func() {
	It("passes JSON through when not on a terminal", func() {
		var buf bytes.Buffer
		logger := zerolog.New(writer(&buf, false))
		logger.Info().Str("path", "assets/contributions.gif").Msg("wrote animation")

		var line map[string]interface{}
		Expect(json.Unmarshal(buf.Bytes(), &line)).To(Succeed())
		Expect(line).To(HaveKeyWithValue("path", "assets/contributions.gif"))
		Expect(line).To(HaveKeyWithValue("message", "wrote animation"))
	})

	It("formats for humans on a terminal", func() {
		var buf bytes.Buffer
		logger := zerolog.New(writer(&buf, true))
		logger.Info().Str("path", "out.gif").Msg("wrote animation")
		Expect(buf.String()).To(ContainSubstring("wrote animation"))
		Expect(buf.String()).NotTo(HavePrefix("{"))
	})
})
