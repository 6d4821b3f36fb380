package utils

import (
	"bytes"
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// PrettyJson serializa in com indentação por tabulação. []byte é tratado como JSON já serializado.
func PrettyJson(in any) string {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(in)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao serializar JSON")
			return ""
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buffer, "", "\t"); err != nil {
		logrus.WithError(err).Warn("Erro ao indentar JSON")
		return string(buffer)
	}

	return out.String()
}
