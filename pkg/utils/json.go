package utils

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa com indentação; bytes são tratados como JSON já pronto
func PrettyJson(in any) string {
	var (
		buffer []byte
		err    error
	)

	if raw, ok := in.([]byte); ok {
		var decoded any
		if err = json.Unmarshal(raw, &decoded); err != nil {
			logrus.WithError(err).Warn("PrettyJson: conteúdo não é um JSON válido")
			return string(raw)
		}
		in = decoded
	}

	buffer, err = json.MarshalIndent(in, "", "\t")
	if err != nil {
		logrus.WithError(err).Warn("PrettyJson: erro ao serializar")
		return ""
	}

	return string(buffer)
}
