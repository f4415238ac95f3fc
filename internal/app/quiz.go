package service

import (
	"context"
	"errors"

	"github.com/okian/paddock/internal/adapters/repository"
	"github.com/okian/paddock/internal/domain/questionnaire"
	"github.com/okian/paddock/internal/domain/quiz"
	"github.com/okian/paddock/internal/domain/types"
	"github.com/okian/paddock/pkg/logger"
	"github.com/okian/paddock/pkg/metrics"
)

// StartQuiz opens a new quiz session on the first question.
func (s *Service) StartQuiz(ctx context.Context) (types.QuizSession, error) {
	if _, _, err := s.state(); err != nil {
		return types.QuizSession{}, err
	}
	st := quiz.State{}
	id := s.sessions.Create(ctx, st)
	s.logger.Debug(ctx, "quiz session created", logger.String("session_id", id))
	return s.view(id, st), nil
}

// Quiz returns the current view of session id.
func (s *Service) Quiz(ctx context.Context, id string) (types.QuizSession, error) {
	if _, _, err := s.state(); err != nil {
		return types.QuizSession{}, err
	}
	st, err := s.sessions.Get(ctx, id)
	if err != nil {
		return types.QuizSession{}, quizError(err)
	}
	return s.view(id, st), nil
}

// AnswerQuiz selects option for the current question and checks it.
func (s *Service) AnswerQuiz(ctx context.Context, id, option string) (types.QuizSession, error) {
	if _, _, err := s.state(); err != nil {
		return types.QuizSession{}, err
	}
	st, err := s.sessions.Update(ctx, id, func(st quiz.State) (quiz.State, error) {
		return quiz.Answer(st, s.bank, option)
	})
	if err != nil {
		return types.QuizSession{}, quizError(err)
	}
	metrics.RecordQuizAnswer(st.Correct)
	return s.view(id, st), nil
}

// NextQuestion moves session id past its answered question.
func (s *Service) NextQuestion(ctx context.Context, id string) (types.QuizSession, error) {
	if _, _, err := s.state(); err != nil {
		return types.QuizSession{}, err
	}
	st, err := s.sessions.Update(ctx, id, func(st quiz.State) (quiz.State, error) {
		return quiz.Next(st, s.bank)
	})
	if err != nil {
		return types.QuizSession{}, quizError(err)
	}
	return s.view(id, st), nil
}

// EndQuiz discards session id.
func (s *Service) EndQuiz(ctx context.Context, id string) error {
	if _, _, err := s.state(); err != nil {
		return err
	}
	if !s.sessions.Delete(ctx, id) {
		return quizError(repository.ErrSessionNotFound)
	}
	s.logger.Debug(ctx, "quiz session ended", logger.String("session_id", id))
	return nil
}

// view renders st for clients. The correct answer is only revealed once
// the question is answered.
func (s *Service) view(id string, st quiz.State) types.QuizSession {
	v := types.QuizSession{
		ID:       id,
		Index:    st.Index,
		Total:    len(s.bank),
		Score:    st.Score,
		Finished: quiz.Finished(st, s.bank),
		Selected: st.Selected,
		Answered: st.Answered,
		Correct:  st.Correct,
	}
	if q, err := quiz.Current(st, s.bank); err == nil {
		v.Question = &types.QuizQuestion{Prompt: q.Prompt, Options: append([]string(nil), q.Options...)}
		if st.Answered {
			v.Answer = q.Answer
		}
	}
	return v
}

func quizError(err error) error {
	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		return kind(ErrNotFound, err)
	case errors.Is(err, quiz.ErrUnknownOption), errors.Is(err, quiz.ErrNoSelection):
		return kind(ErrBadInput, err)
	case errors.Is(err, quiz.ErrAlreadyAnswered), errors.Is(err, quiz.ErrNotAnswered), errors.Is(err, quiz.ErrFinished):
		return kind(ErrConflict, err)
	}
	return err
}

// Questionnaire returns the team questionnaire.
func (s *Service) Questionnaire(_ context.Context) []types.QuestionnaireQuestion {
	qs := questionnaire.Questions()
	out := make([]types.QuestionnaireQuestion, len(qs))
	for i, q := range qs {
		opts := make([]string, len(q.Options))
		for j, o := range q.Options {
			opts[j] = o.Text
		}
		out[i] = types.QuestionnaireQuestion{Prompt: q.Prompt, Options: opts}
	}
	return out
}

// Recommend picks a team from the questionnaire answers, given in
// question order.
func (s *Service) Recommend(ctx context.Context, answers []string) (types.Recommendation, error) {
	if _, _, err := s.state(); err != nil {
		return types.Recommendation{}, err
	}
	res, err := questionnaire.Recommend(answers)
	if err != nil {
		return types.Recommendation{}, kind(ErrBadInput, err)
	}
	metrics.RecordQuestionnaireRecommendation(res.Team)
	s.logger.Debug(ctx, "questionnaire answered", logger.String("profile", res.Profile), logger.String("team", res.Team))
	return types.Recommendation{
		Profile: res.Profile,
		Team:    res.Team,
		Message: s.locale.Recommendation(res.Team),
	}, nil
}
