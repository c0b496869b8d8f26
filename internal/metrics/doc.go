// Package metrics tallies graded answers for a single quiz session.
//
// A Tally counts attempts and correct answers overall and per label,
// keyed by the expected label code. The quiz runner derives the final
// score from it.
//
// # Basic Usage
//
//	t := metrics.New()
//	t.RecordCorrect("BF")
//	t.RecordWrong("DB")
//
//	snap := t.Snapshot()
//	fmt.Printf("%d/%d\n", snap.Correct, snap.Attempts)
//
// # Thread Safety
//
// A Tally belongs to one session and is not safe for concurrent use.
package metrics
