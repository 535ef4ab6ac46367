package service

import (
	"errors"
	"testing"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/util"
)

func assessmentFixture(t *testing.T) (*AssessmentService, *fakeAssessmentStore, *StartAssessmentResult) {
	t.Helper()

	q1 := mcq(1, "TechDomain", 2, "Linked list", "Hash map", "Binary tree")
	q2 := mcq(2, "TechDomain", 3, "Server error", "Unauthorized", "Not found")
	q1.DomainID = 1
	q2.DomainID = 1

	store := newFakeAssessmentStore()
	svc := NewAssessmentService(store, newFakeQuestionSource(q1, q2))

	started, err := svc.Start(nil, StartAssessmentRequest{DomainID: 1})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(started.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(started.Questions))
	}
	return svc, store, started
}

func TestSubmit_ScoresAndSeals(t *testing.T) {
	svc, store, started := assessmentFixture(t)

	result, err := svc.Submit(started.AssessmentID, nil, []AnswerSubmission{
		{ItemID: started.Questions[0].ItemID, SelectedChoice: "c2", ResponseTimeMs: 900},
		{ItemID: started.Questions[1].ItemID, SelectedChoice: "c1", ResponseTimeMs: 1200},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if result.CorrectAnswers != 1 || result.TotalQuestions != 2 {
		t.Fatalf("expected 1/2 correct, got %d/%d", result.CorrectAnswers, result.TotalQuestions)
	}
	if result.OverallPercent != 50 {
		t.Fatalf("expected 50%%, got %v", result.OverallPercent)
	}

	sealed := store.assessments[started.AssessmentID]
	if sealed.SubmittedAt == nil {
		t.Fatalf("assessment not sealed")
	}
	if sealed.Score == nil || *sealed.Score != 50 {
		t.Fatalf("expected stored score 50, got %v", sealed.Score)
	}
	for _, item := range sealed.Items {
		if item.SelectedChoice == nil || item.IsCorrect == nil {
			t.Fatalf("item %d not scored", item.ID)
		}
	}
}

func TestSubmit_AllWrong(t *testing.T) {
	svc, _, started := assessmentFixture(t)

	result, err := svc.Submit(started.AssessmentID, nil, []AnswerSubmission{
		{ItemID: started.Questions[0].ItemID, SelectedChoice: "c1"},
		{ItemID: started.Questions[1].ItemID, SelectedChoice: "c2"},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.CorrectAnswers != 0 || result.OverallPercent != 0 {
		t.Fatalf("expected zero score, got %d correct, %v%%", result.CorrectAnswers, result.OverallPercent)
	}
}

func TestSubmit_SecondAttemptConflictsWithoutMutation(t *testing.T) {
	svc, store, started := assessmentFixture(t)

	first, err := svc.Submit(started.AssessmentID, nil, []AnswerSubmission{
		{ItemID: started.Questions[0].ItemID, SelectedChoice: "c2"},
		{ItemID: started.Questions[1].ItemID, SelectedChoice: "c3"},
	})
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}

	_, err = svc.Submit(started.AssessmentID, nil, []AnswerSubmission{
		{ItemID: started.Questions[0].ItemID, SelectedChoice: "c1"},
		{ItemID: started.Questions[1].ItemID, SelectedChoice: "c1"},
	})
	if !errors.Is(err, util.ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}

	sealed := store.assessments[started.AssessmentID]
	if !sealed.SubmittedAt.Equal(first.SubmittedAt) {
		t.Fatalf("submission timestamp changed on conflicting resubmit")
	}
	if *sealed.Score != first.OverallPercent {
		t.Fatalf("score changed on conflicting resubmit")
	}
}

func TestSubmit_EmptyAnswersRejected(t *testing.T) {
	svc, _, started := assessmentFixture(t)

	if _, err := svc.Submit(started.AssessmentID, nil, nil); !errors.Is(err, util.ErrEmptyAnswers) {
		t.Fatalf("expected ErrEmptyAnswers, got %v", err)
	}
}

func TestSubmit_UnknownAssessment(t *testing.T) {
	svc, _, _ := assessmentFixture(t)

	if _, err := svc.Submit(999, nil, []AnswerSubmission{{ItemID: 1}}); !errors.Is(err, util.ErrAssessmentNotFound) {
		t.Fatalf("expected ErrAssessmentNotFound, got %v", err)
	}
}

func TestSubmit_ForeignItemsAndDuplicatesSkipped(t *testing.T) {
	svc, _, started := assessmentFixture(t)

	result, err := svc.Submit(started.AssessmentID, nil, []AnswerSubmission{
		{ItemID: started.Questions[0].ItemID, SelectedChoice: "c2"},
		{ItemID: started.Questions[0].ItemID, SelectedChoice: "c1"}, // duplicate, ignored
		{ItemID: 4242, SelectedChoice: "c2"},                       // not an item of this assessment
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.TotalQuestions != 1 || result.CorrectAnswers != 1 {
		t.Fatalf("expected 1/1 after skipping, got %d/%d", result.CorrectAnswers, result.TotalQuestions)
	}
	if result.OverallPercent != 100 {
		t.Fatalf("expected 100%%, got %v", result.OverallPercent)
	}
}

func TestSubmit_QuestionLookupFailureLeavesUnsealed(t *testing.T) {
	q1 := mcq(1, "TechDomain", 1, "a", "b")
	q2 := mcq(2, "TechDomain", 1, "a", "b")
	q1.DomainID = 1
	q2.DomainID = 1
	questions := newFakeQuestionSource(q1, q2)
	store := newFakeAssessmentStore()
	svc := NewAssessmentService(store, questions)

	started, err := svc.Start(nil, StartAssessmentRequest{DomainID: 1})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// not a missing row: the store itself is failing
	questions.findByIDErr = errors.New("driver: bad connection")

	_, err = svc.Submit(started.AssessmentID, nil, []AnswerSubmission{
		{ItemID: started.Questions[0].ItemID, SelectedChoice: "c1"},
		{ItemID: started.Questions[1].ItemID, SelectedChoice: "c1"},
	})
	if err == nil {
		t.Fatalf("expected submit to fail on store error")
	}

	a := store.assessments[started.AssessmentID]
	if a.SubmittedAt != nil || a.Score != nil {
		t.Fatalf("assessment sealed despite aborted submit: submittedAt=%v score=%v", a.SubmittedAt, a.Score)
	}

	// the store recovers and the retry seals normally
	questions.findByIDErr = nil
	result, err := svc.Submit(started.AssessmentID, nil, []AnswerSubmission{
		{ItemID: started.Questions[0].ItemID, SelectedChoice: "c1"},
		{ItemID: started.Questions[1].ItemID, SelectedChoice: "c2"},
	})
	if err != nil {
		t.Fatalf("retry submit: %v", err)
	}
	if result.CorrectAnswers != 1 || result.TotalQuestions != 2 {
		t.Fatalf("expected 1/2 on retry, got %d/%d", result.CorrectAnswers, result.TotalQuestions)
	}
}

func TestSubmit_DeletedQuestionSkippedButStillSeals(t *testing.T) {
	q1 := mcq(1, "TechDomain", 1, "a", "b")
	q2 := mcq(2, "TechDomain", 1, "a", "b")
	q1.DomainID = 1
	q2.DomainID = 1
	questions := newFakeQuestionSource(q1, q2)
	store := newFakeAssessmentStore()
	svc := NewAssessmentService(store, questions)

	started, err := svc.Start(nil, StartAssessmentRequest{DomainID: 1})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// question removed between start and submit resolves to not-found
	delete(questions.questions, 2)

	result, err := svc.Submit(started.AssessmentID, nil, []AnswerSubmission{
		{ItemID: started.Questions[0].ItemID, SelectedChoice: "c1"},
		{ItemID: started.Questions[1].ItemID, SelectedChoice: "c1"},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.TotalQuestions != 1 || result.CorrectAnswers != 1 {
		t.Fatalf("expected 1/1 after skipping deleted question, got %d/%d", result.CorrectAnswers, result.TotalQuestions)
	}
	if store.assessments[started.AssessmentID].SubmittedAt == nil {
		t.Fatalf("assessment should still seal when only an id fails to resolve")
	}
}

func TestSubmit_OwnershipEnforced(t *testing.T) {
	q := mcq(1, "TechDomain", 1, "a", "b")
	q.DomainID = 1
	store := newFakeAssessmentStore()
	svc := NewAssessmentService(store, newFakeQuestionSource(q))

	owner := uint(7)
	started, err := svc.Start(&owner, StartAssessmentRequest{DomainID: 1})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	intruder := uint(8)
	_, err = svc.Submit(started.AssessmentID, &intruder, []AnswerSubmission{
		{ItemID: started.Questions[0].ItemID, SelectedChoice: "c1"},
	})
	if !errors.Is(err, util.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	if _, err := svc.Result(started.AssessmentID, &intruder); !errors.Is(err, util.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner on result read, got %v", err)
	}
}

func TestStart_UnknownDomain(t *testing.T) {
	svc := NewAssessmentService(newFakeAssessmentStore(), newFakeQuestionSource())

	if _, err := svc.Start(nil, StartAssessmentRequest{DomainID: 42}); !errors.Is(err, util.ErrDomainNotFound) {
		t.Fatalf("expected ErrDomainNotFound, got %v", err)
	}
}

func TestStart_NeverLeaksCorrectAnswer(t *testing.T) {
	q := mcq(1, "TechDomain", 2, "a", "b")
	q.DomainID = 1
	svc := NewAssessmentService(newFakeAssessmentStore(), newFakeQuestionSource(q))

	started, err := svc.Start(nil, StartAssessmentRequest{DomainID: 1})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// the view carries only the option labels
	if len(started.Questions) != 1 {
		t.Fatalf("expected one question")
	}
	if got := string(started.Questions[0].Options); got != `["a","b"]` {
		t.Fatalf("unexpected options payload: %s", got)
	}
}

func TestModelSealed(t *testing.T) {
	var a model.Assessment
	if a.Sealed() {
		t.Fatalf("fresh assessment must not be sealed")
	}
}
