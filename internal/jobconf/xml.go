package jobconf

import (
	"bytes"
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseXML 解析结构化配置，返回 Job 作用域 Map 与按文档顺序排列的 Task Map 列表。
//
// 结构约定：根元素 <job>，其直接子元素即 Job 作用域键（标签名 = 键名）；
// <tasks> 下的每个 <task> 产出一个 Task Map，同样取直接子元素。
// 解析走 HTML 容错模式，标签名按小写处理（键名本就是小写 snake_case）。
func ParseXML(b []byte) (Map, []Map, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return nil, nil, &Error{Code: ErrCodeMalformed, Err: err}
	}

	job := doc.Find("job").First()
	if job.Length() == 0 {
		return nil, nil, &Error{Code: ErrCodeMalformed, Err: errors.New("缺少 <job> 根元素")}
	}

	jm := make(Map, 16)
	job.Children().Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)
		if name == "tasks" {
			return
		}
		if v := strings.TrimSpace(s.Text()); v != "" {
			jm[name] = v
		}
	})

	var tms []Map
	job.Find("tasks task").Each(func(_ int, t *goquery.Selection) {
		tm := make(Map, 8)
		t.Children().Each(func(_ int, s *goquery.Selection) {
			if v := strings.TrimSpace(s.Text()); v != "" {
				tm[goquery.NodeName(s)] = v
			}
		})
		tms = append(tms, tm)
	})

	return jm, tms, nil
}
