package connection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vectus-Drive/backend/internal/shared/connection"
)

func TestKafkaBrokers(t *testing.T) {
	assert.Equal(t, []string{"localhost:9092"}, connection.KafkaBrokers("localhost:9092"))
	assert.Equal(t,
		[]string{"kafka-1:9092", "kafka-2:9092"},
		connection.KafkaBrokers("kafka-1:9092, kafka-2:9092"),
	)
	assert.Nil(t, connection.KafkaBrokers(""))
	assert.Nil(t, connection.KafkaBrokers(" , "))
}

func TestConnectKafkaWithRetry_NoBrokers(t *testing.T) {
	_, err := connection.ConnectKafkaWithRetry(nil, 1)
	assert.Error(t, err)
}
