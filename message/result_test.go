package message_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corp2world/c2w-go/message"
)

func TestResult_Decode(t *testing.T) {
	t.Parallel()

	t.Run("ok result with message id", func(t *testing.T) {
		t.Parallel()

		var res message.Result
		err := json.Unmarshal([]byte(`{"status":"OK","response":"queued","properties":{"messageId":"1234"}}`), &res)
		require.NoError(t, err)

		assert.True(t, res.OK())
		assert.Equal(t, "queued", res.Response)

		id, err := res.MessageID()
		require.NoError(t, err)
		assert.Equal(t, int64(1234), id)
	})

	t.Run("error result", func(t *testing.T) {
		t.Parallel()

		var res message.Result
		err := json.Unmarshal([]byte(`{"status":"ERROR","response":"quota exceeded"}`), &res)
		require.NoError(t, err)

		assert.False(t, res.OK())
		assert.Equal(t, message.StatusError, res.Status)

		_, err = res.MessageID()
		assert.ErrorIs(t, err, message.ErrInvalidMessageID)
	})

	t.Run("missing status", func(t *testing.T) {
		t.Parallel()

		for _, body := range []string{`{}`, `null`, `{"response":"queued"}`} {
			var res message.Result
			require.NoError(t, json.Unmarshal([]byte(body), &res), body)
			assert.Equal(t, message.StatusUnknown, res.Status, body)
			assert.False(t, res.OK(), body)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		t.Parallel()

		var res message.Result
		err := json.Unmarshal([]byte(`{"status":"MAYBE"}`), &res)
		assert.ErrorIs(t, err, message.ErrInvalidStatus)
	})
}

func TestResult_MessageID(t *testing.T) {
	t.Parallel()

	var nilResult *message.Result
	_, err := nilResult.MessageID()
	assert.ErrorIs(t, err, message.ErrInvalidMessageID)
	assert.False(t, nilResult.OK())

	res := message.NewResult(message.StatusOK, nil)
	res.SetProperty(message.PropertyMessageID, "not-a-number")
	_, err = res.MessageID()
	assert.ErrorIs(t, err, message.ErrInvalidMessageID)

	res.SetProperty(message.PropertyMessageID, "77")
	id, err := res.MessageID()
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)
}

func TestStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "OK", message.StatusOK.String())
	assert.Equal(t, "ERROR", message.StatusError.String())
	assert.Equal(t, "UNKNOWN", message.StatusUnknown.String())
	assert.Equal(t, "Status(9)", message.Status(9).String())

	data, err := json.Marshal(message.NewResult(message.StatusError, "boom"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ERROR","response":"boom"}`, string(data))

	_, err = json.Marshal(message.Status(9))
	assert.ErrorIs(t, err, message.ErrInvalidStatus)

	_, err = json.Marshal(message.StatusUnknown)
	assert.ErrorIs(t, err, message.ErrInvalidStatus)
}

func TestResponse_RespondedAt(t *testing.T) {
	t.Parallel()

	var resp message.Response
	err := json.Unmarshal([]byte(`{"messageId":5,"timestamp":1700000000000,"respondedOption":"Yes","userId":"u-1","channelId":2}`), &resp)
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.MessageID)
	assert.Equal(t, "Yes", resp.RespondedOption)
	assert.Equal(t, "u-1", resp.UserID)
	assert.Equal(t, 2, resp.ChannelID)
	assert.Equal(t, time.UnixMilli(1700000000000), resp.RespondedAt())
}
