package docquiz_test

import (
	"testing"

	"github.com/fwojciec/docquiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validReply = `{
  "question": "What does len() return?",
  "options": [
    {"answer": "The number of items", "correct": true},
    {"answer": "The memory size", "correct": false},
    {"answer": "The hash", "correct": false},
    {"answer": "The type", "correct": false}
  ]
}`

func TestParseQuiz(t *testing.T) {
	t.Parallel()

	t.Run("decodes a valid reply", func(t *testing.T) {
		t.Parallel()

		q, err := docquiz.ParseQuiz(validReply)

		require.NoError(t, err)
		assert.Equal(t, "What does len() return?", q.Question)
		require.Len(t, q.Options, 4)
		assert.Equal(t, "The number of items", q.Options[0].Answer)
		assert.True(t, q.Options[0].Correct)
		assert.False(t, q.Options[1].Correct)
	})

	t.Run("tolerates a markdown code fence", func(t *testing.T) {
		t.Parallel()

		q, err := docquiz.ParseQuiz("```json\n" + validReply + "\n```")

		require.NoError(t, err)
		assert.Equal(t, "What does len() return?", q.Question)
	})

	t.Run("strips newlines inside string values", func(t *testing.T) {
		t.Parallel()

		reply := "{\"question\": \"Multi\nline\", \"options\": [" +
			"{\"answer\": \"a\", \"correct\": true}," +
			"{\"answer\": \"b\", \"correct\": false}," +
			"{\"answer\": \"c\", \"correct\": false}," +
			"{\"answer\": \"d\", \"correct\": false}]}"

		q, err := docquiz.ParseQuiz(reply)

		require.NoError(t, err)
		assert.Equal(t, "Multiline", q.Question)
	})

	t.Run("rejects an empty reply", func(t *testing.T) {
		t.Parallel()

		_, err := docquiz.ParseQuiz("")

		require.Error(t, err)
		assert.Equal(t, docquiz.EMALFORMED, docquiz.ErrorCode(err))
		assert.Contains(t, docquiz.ErrorMessage(err), "malformed quiz reply")
	})

	t.Run("rejects non-JSON prose", func(t *testing.T) {
		t.Parallel()

		_, err := docquiz.ParseQuiz("Sure! Here is your quiz.")

		require.Error(t, err)
		assert.Equal(t, docquiz.EMALFORMED, docquiz.ErrorCode(err))
	})

	t.Run("rejects wrong option count", func(t *testing.T) {
		t.Parallel()

		_, err := docquiz.ParseQuiz(`{"question": "Q", "options": [{"answer": "A", "correct": true}]}`)

		require.Error(t, err)
		assert.Equal(t, docquiz.EMALFORMED, docquiz.ErrorCode(err))
		assert.Contains(t, docquiz.ErrorMessage(err), "expected 4 options, got 1")
	})

	t.Run("rejects missing question", func(t *testing.T) {
		t.Parallel()

		_, err := docquiz.ParseQuiz(`{"options": []}`)

		require.Error(t, err)
		assert.Contains(t, docquiz.ErrorMessage(err), "question required")
	})

	t.Run("rejects option without answer", func(t *testing.T) {
		t.Parallel()

		_, err := docquiz.ParseQuiz(`{"question": "Q", "options": [` +
			`{"answer": "A", "correct": true},{"answer": "", "correct": false},` +
			`{"answer": "C", "correct": false},{"answer": "D", "correct": false}]}`)

		require.Error(t, err)
		assert.Contains(t, docquiz.ErrorMessage(err), "option 2 has no answer")
	})

	t.Run("rejects options of the wrong type", func(t *testing.T) {
		t.Parallel()

		_, err := docquiz.ParseQuiz(`{"question": "Q", "options": "A, B, C, D"}`)

		require.Error(t, err)
		assert.Equal(t, docquiz.EMALFORMED, docquiz.ErrorCode(err))
	})
}

func TestQuiz_CorrectOptions(t *testing.T) {
	t.Parallel()

	q := &docquiz.Quiz{
		Question: "Q",
		Options: []docquiz.Option{
			{Answer: "A"}, {Answer: "B", Correct: true}, {Answer: "C"}, {Answer: "D", Correct: true},
		},
	}

	assert.Equal(t, []int{1, 3}, q.CorrectOptions())
}

func TestSession_Score(t *testing.T) {
	t.Parallel()

	s := &docquiz.Session{Points: 2, Rounds: 5}

	assert.Equal(t, "2/5", s.Score())
}
