package service

import (
	"lernraum_backend/internal/model"
	"lernraum_backend/internal/repository"
	"lernraum_backend/internal/util"
)

type QAService struct {
	QARepo *repository.QARepository
}

func NewQAService(qaRepo *repository.QARepository) *QAService {
	return &QAService{QARepo: qaRepo}
}

// AnswerNode ist eine Antwort samt ihrer untergeordneten Antworten.
type AnswerNode struct {
	model.QAAnswer
	Children []*AnswerNode `json:"children"`
}

func (s *QAService) CreateQuestion(question *model.QAQuestion, attachments []model.QAAttachment) error {
	if err := s.QARepo.CreateQuestion(question); err != nil {
		return err
	}
	for i := range attachments {
		attachments[i].QuestionID = &question.ID
		attachments[i].AnswerID = nil
		if err := s.QARepo.CreateAttachment(&attachments[i]); err != nil {
			return err
		}
	}
	return nil
}

// QuestionView ist eine Frage mit der Anzahl ihrer Antworten.
type QuestionView struct {
	model.QAQuestion
	AnswerCount int64 `json:"answerCount"`
}

func (s *QAService) ListQuestions(page, pageSize int, resolved *bool) ([]QuestionView, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	questions, total, err := s.QARepo.ListQuestions((page-1)*pageSize, pageSize, resolved)
	if err != nil {
		return nil, 0, err
	}

	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		view := QuestionView{QAQuestion: q}
		view.AnswerCount, _ = s.QARepo.CountAnswers(q.ID)
		views = append(views, view)
	}
	return views, total, nil
}

// GetQuestion lädt eine Frage mit ihrem Antwortbaum.
func (s *QAService) GetQuestion(id uint) (*model.QAQuestion, []*AnswerNode, error) {
	question, err := s.QARepo.FindQuestion(id)
	if err != nil {
		return nil, nil, err
	}

	answers, err := s.QARepo.ListAnswers(id)
	if err != nil {
		return nil, nil, err
	}

	return question, BuildAnswerTree(answers), nil
}

// BuildAnswerTree baut aus der flachen, chronologisch sortierten Liste den
// Antwortbaum. Antworten auf gelöschte Eltern erscheinen als Wurzeln.
func BuildAnswerTree(answers []model.QAAnswer) []*AnswerNode {
	nodes := make(map[uint]*AnswerNode, len(answers))
	order := make([]*AnswerNode, 0, len(answers))
	for i := range answers {
		node := &AnswerNode{QAAnswer: answers[i], Children: []*AnswerNode{}}
		nodes[answers[i].ID] = node
		order = append(order, node)
	}

	var roots []*AnswerNode
	for _, node := range order {
		if node.ParentAnswerID != nil {
			if parent, ok := nodes[*node.ParentAnswerID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

func (s *QAService) CreateAnswer(answer *model.QAAnswer, attachments []model.QAAttachment) error {
	if _, err := s.QARepo.FindQuestion(answer.QuestionID); err != nil {
		return err
	}

	if answer.ParentAnswerID != nil {
		parent, err := s.QARepo.FindAnswer(*answer.ParentAnswerID)
		if err != nil {
			return err
		}
		if parent.QuestionID != answer.QuestionID {
			return util.ErrPermissionDenied
		}
	}

	if err := s.QARepo.CreateAnswer(answer); err != nil {
		return err
	}
	for i := range attachments {
		attachments[i].AnswerID = &answer.ID
		attachments[i].QuestionID = nil
		if err := s.QARepo.CreateAttachment(&attachments[i]); err != nil {
			return err
		}
	}
	return nil
}

// SetResolved darf nur die fragende Person oder ein Admin.
func (s *QAService) SetResolved(questionID uint, userID uint, isAdmin bool, resolved bool) error {
	question, err := s.QARepo.FindQuestion(questionID)
	if err != nil {
		return err
	}
	if question.AuthorID != userID && !isAdmin {
		return util.ErrPermissionDenied
	}
	question.IsResolved = resolved
	return s.QARepo.UpdateQuestion(question)
}

func (s *QAService) DeleteQuestion(questionID uint, userID uint, isAdmin bool) error {
	question, err := s.QARepo.FindQuestion(questionID)
	if err != nil {
		return err
	}
	if question.AuthorID != userID && !isAdmin {
		return util.ErrPermissionDenied
	}
	return s.QARepo.DeleteQuestion(questionID)
}

func (s *QAService) DeleteAnswer(answerID uint, userID uint, isAdmin bool) error {
	answer, err := s.QARepo.FindAnswer(answerID)
	if err != nil {
		return err
	}
	if answer.AuthorID != userID && !isAdmin {
		return util.ErrPermissionDenied
	}
	return s.QARepo.DeleteAnswer(answerID)
}
