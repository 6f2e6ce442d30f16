package models

type TopicCount struct {
	Episodes int `json:"episodes" yaml:"episodes"`
	Articles int `json:"articles" yaml:"articles"`
}

type Topic struct {
	Slug  string      `json:"slug" yaml:"slug"`
	Name  string      `json:"name" yaml:"name"`
	Icon  string      `json:"icon,omitempty" yaml:"icon,omitempty"`
	Count *TopicCount `json:"count,omitempty" yaml:"count,omitempty"`
}

func (t Topic) Clone() Topic {
	out := t
	if t.Count != nil {
		c := *t.Count
		out.Count = &c
	}
	return out
}
