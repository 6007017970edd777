// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hazem-e99/SurveyProject/i18n"
)

// Seed populates first-run demo data: one admin, two sample polls with
// questions and a couple of submissions, and the public-site sections.
// A database that already has an admin is left untouched.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM admin`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check for existing admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	adminID, err := NextID(tx, CollAdmins)
	if err != nil {
		return err
	}
	_, err = tx.Exec(`
		INSERT INTO admin (id, username, email, password_hash, full_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, adminID, "admin", "admin@survey.com", string(hash), "System Administrator", t0)
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	type seedOption struct {
		text i18n.Text
	}
	type seedQuestion struct {
		text     i18n.Text
		qtype    string
		required bool
		multi    bool
		maxSel   *int
		options  []seedOption
	}
	type seedPoll struct {
		title     i18n.Text
		desc      i18n.Text
		start     time.Time
		end       time.Time
		questions []seedQuestion
	}

	three := 3
	polls := []seedPoll{
		{
			title: i18n.Text{
				AR: "استطلاع رضا العملاء",
				EN: "Customer Satisfaction Survey",
				KU: "ڕاپرسی ڕەزامەندی کڕیاران",
			},
			desc: i18n.Text{
				AR: "ساعدنا في تحسين خدماتنا من خلال مشاركة ملاحظاتك",
				EN: "Help us improve our services by sharing your feedback",
				KU: "یارمەتیمان بدە بۆ باشترکردنی خزمەتگوزارییەکانمان بە هاوبەشکردنی بۆچوونەکانت",
			},
			start: t0,
			end:   time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			questions: []seedQuestion{
				{
					text: i18n.Text{
						AR: "ما مدى رضاك عن خدمتنا؟",
						EN: "How satisfied are you with our service?",
						KU: "چەند ڕازیت لە خزمەتگوزارییەکەمان؟",
					},
					qtype:    "mcq",
					required: true,
					options: []seedOption{
						{i18n.Text{AR: "راضٍ جداً", EN: "Very Satisfied", KU: "زۆر ڕازیم"}},
						{i18n.Text{AR: "راضٍ", EN: "Satisfied", KU: "ڕازیم"}},
						{i18n.Text{AR: "محايد", EN: "Neutral", KU: "بێلایەن"}},
						{i18n.Text{AR: "غير راضٍ", EN: "Dissatisfied", KU: "ڕازی نیم"}},
						{i18n.Text{AR: "غير راضٍ جداً", EN: "Very Dissatisfied", KU: "زۆر ڕازی نیم"}},
					},
				},
				{
					text: i18n.Text{
						AR: "ما الذي يمكننا تحسينه؟",
						EN: "What can we improve?",
						KU: "چی دەتوانین باشتر بکەین؟",
					},
					qtype: "text",
				},
			},
		},
		{
			title: i18n.Text{
				AR: "استطلاع رأي عن المنتج",
				EN: "Product Feedback",
				KU: "ڕاپرسی بۆچوون دەربارەی بەرهەم",
			},
			desc: i18n.Text{
				AR: "أخبرنا برأيك حول أحدث منتجاتنا",
				EN: "Tell us what you think about our latest product",
				KU: "پێمان بڵێ بۆچوونت چییە دەربارەی نوێترین بەرهەمەکەمان",
			},
			start: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC),
			questions: []seedQuestion{
				{
					text: i18n.Text{
						AR: "ما هي الميزات التي تستخدمها أكثر؟",
						EN: "Which features do you use most?",
						KU: "کام تایبەتمەندییەکان زیاتر بەکاردێنیت؟",
					},
					qtype:    "mcq",
					required: true,
					multi:    true,
					maxSel:   &three,
					options: []seedOption{
						{i18n.Text{AR: "لوحة التحكم", EN: "Dashboard", KU: "داشبۆرد"}},
						{i18n.Text{AR: "التقارير", EN: "Reports", KU: "ڕاپۆرتەکان"}},
						{i18n.Text{AR: "التحليلات", EN: "Analytics", KU: "شیکاری"}},
						{i18n.Text{AR: "الإعدادات", EN: "Settings", KU: "ڕێکخستنەکان"}},
					},
				},
			},
		},
	}

	var firstPollID int
	var satisfactionOpts []int
	var satisfactionQuestionID, improveQuestionID int

	for pi, p := range polls {
		pollID, err := NextID(tx, CollPolls)
		if err != nil {
			return err
		}
		if pi == 0 {
			firstPollID = pollID
		}
		_, err = tx.Exec(`
			INSERT INTO poll (id, title, description, admin_id, status, start_date, end_date, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, pollID, p.title, p.desc, adminID, "active", p.start, p.end, p.start, p.start)
		if err != nil {
			return fmt.Errorf("failed to seed poll: %w", err)
		}

		for qi, q := range p.questions {
			questionID, err := NextID(tx, CollQuestions)
			if err != nil {
				return err
			}
			_, err = tx.Exec(`
				INSERT INTO question (id, poll_id, question_text, question_type, order_number,
					is_required, allow_multiple_selections, max_selections, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			`, questionID, pollID, q.text, q.qtype, qi+1, q.required, q.multi, q.maxSel, p.start, p.start)
			if err != nil {
				return fmt.Errorf("failed to seed question: %w", err)
			}
			if pi == 0 {
				if q.qtype == "text" {
					improveQuestionID = questionID
				} else {
					satisfactionQuestionID = questionID
				}
			}

			for oi, opt := range q.options {
				optionID, err := NextID(tx, CollMCQOptions)
				if err != nil {
					return err
				}
				_, err = tx.Exec(`
					INSERT INTO mcq_option (id, question_id, option_text, order_number, created_at)
					VALUES ($1, $2, $3, $4, $5)
				`, optionID, questionID, opt.text, oi+1, p.start)
				if err != nil {
					return fmt.Errorf("failed to seed option: %w", err)
				}
				if pi == 0 && qi == 0 {
					satisfactionOpts = append(satisfactionOpts, optionID)
				}
			}
		}
	}

	// Two demo submissions against the satisfaction poll.
	demoSubmissions := []struct {
		optionIdx int
		feedback  string
		at        time.Time
	}{
		{0, "Better mobile app", time.Date(2024, 1, 10, 10, 30, 0, 0, time.UTC)},
		{1, "Faster response times", time.Date(2024, 1, 11, 14, 20, 0, 0, time.UTC)},
	}
	for i, sub := range demoSubmissions {
		responseID, err := NextID(tx, CollResponses)
		if err != nil {
			return err
		}
		_, err = tx.Exec(`
			INSERT INTO response (id, poll_id, session_id, ip_address, user_agent, submitted_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, responseID, firstPollID, fmt.Sprintf("seed-session-%d", i+1), "0.0.0.0", "seed", sub.at)
		if err != nil {
			return fmt.Errorf("failed to seed response: %w", err)
		}

		answerID, err := NextID(tx, CollMCQAnswers)
		if err != nil {
			return err
		}
		_, err = tx.Exec(`
			INSERT INTO mcq_answer (id, response_id, question_id, option_id, answered_at)
			VALUES ($1, $2, $3, $4, $5)
		`, answerID, responseID, satisfactionQuestionID, satisfactionOpts[sub.optionIdx], sub.at)
		if err != nil {
			return fmt.Errorf("failed to seed mcq answer: %w", err)
		}

		textID, err := NextID(tx, CollTextAnswers)
		if err != nil {
			return err
		}
		_, err = tx.Exec(`
			INSERT INTO text_answer (id, response_id, question_id, answer_text, answered_at)
			VALUES ($1, $2, $3, $4, $5)
		`, textID, responseID, improveQuestionID, sub.feedback, sub.at)
		if err != nil {
			return fmt.Errorf("failed to seed text answer: %w", err)
		}
	}

	if err := seedSections(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed data: %w", err)
	}
	return nil
}

func seedSections(tx *sql.Tx) error {
	sections := []struct {
		page    string
		title   i18n.Text
		content i18n.Text
		media   *string
		order   int
	}{
		{
			page: "about",
			title: i18n.Text{
				AR: "مهمتنا",
				EN: "Our Mission",
				KU: "ئامانجەکانمان",
			},
			content: i18n.Text{
				AR: "نحن ملتزمون بتعزيز النمو والابتكار والتعاون.",
				EN: "We are dedicated to fostering growth, innovation, and collaboration.",
				KU: "ئێمە خۆمان تەرخان کردووە بۆ پەرەپێدانی گەشە و داهێنان و هاوکاری.",
			},
			media: strPtr("https://images.unsplash.com/photo-1522071820081-009f0129c71c?w=800"),
			order: 1,
		},
		{
			page: "talent-development",
			title: i18n.Text{
				AR: "تمكين قادة المستقبل",
				EN: "Empowering Future Leaders",
				KU: "بەهێزکردنی سەرکردەکانی داهاتوو",
			},
			content: i18n.Text{
				AR: "تم تصميم برامج تطوير المواهب لدينا لرعاية الجيل القادم من القادة.",
				EN: "Our talent development programs are designed to nurture the next generation of leaders.",
				KU: "بەرنامەکانی گەشەپێدانی بەهرەمان بۆ پەروەردەکردنی نەوەی داهاتووی سەرکردەکان داڕێژراوە.",
			},
			media: strPtr("https://images.unsplash.com/photo-1522071820081-009f0129c71c?w=800"),
			order: 1,
		},
		{
			page: "community-engagement",
			title: i18n.Text{
				AR: "بناء مجتمعات أقوى",
				EN: "Building Stronger Communities",
				KU: "بنیاتنانی کۆمەڵگەی بەهێزتر",
			},
			content: i18n.Text{
				AR: "المشاركة المجتمعية هي في صميم ما نقوم به.",
				EN: "Community engagement is at the heart of what we do.",
				KU: "بەشداریکردنی کۆمەڵگە لە ناوەڕاستی ئەوەدایە کە ئێمە دەیکەین.",
			},
			media: strPtr("https://images.unsplash.com/photo-1559027615-cd4628902d4a?w=800"),
			order: 1,
		},
		{
			page: "activity-schedule",
			title: i18n.Text{
				AR: "ورشة عمل القيادة",
				EN: "Leadership Workshop",
				KU: "وۆرکشۆپی سەرکردایەتی",
			},
			content: i18n.Text{
				AR: "2024-12-15\n10:00 صباحاً - 2:00 مساءً\nقاعة المؤتمرات الرئيسية",
				EN: "2024-12-15\n10:00 AM - 2:00 PM\nMain Conference Hall",
				KU: "2024-12-15\n10:00 پێش نیوەڕۆ - 2:00 پاش نیوەڕۆ\nهۆڵی کۆنفرانسی سەرەکی",
			},
			order: 1,
		},
		{
			page: "job-opportunities",
			title: i18n.Text{
				AR: "فرص العمل",
				EN: "Career Opportunities",
				KU: "دەرفەتی کار",
			},
			content: i18n.Text{
				AR: "نحن دائما نبحث عن أفراد موهوبين للانضمام إلى فريقنا.",
				EN: "We are always looking for talented individuals to join our team.",
				KU: "هەمیشە بەدوای تاکە بەهرەداراندا دەگەڕێین بۆ پێکهاتنی تیمەکەمان.",
			},
			media: strPtr("https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?w=800"),
			order: 1,
		},
	}

	for _, s := range sections {
		id, err := NextID(tx, CollSections)
		if err != nil {
			return err
		}
		_, err = tx.Exec(`
			INSERT INTO section (id, page, title, content, media, order_number)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, id, s.page, s.title, s.content, s.media, s.order)
		if err != nil {
			return fmt.Errorf("failed to seed section: %w", err)
		}
	}
	return nil
}

func strPtr(s string) *string { return &s }
