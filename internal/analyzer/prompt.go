package analyzer

// BuildBulletinPrompt returns the extraction prompt sent alongside the
// bulletin image. The scripture passage is recalled from the model's own
// knowledge in the 개역개정 translation, not fetched from any source.
func BuildBulletinPrompt() string {
	return `이 주보 이미지에서 다음 정보를 찾아 JSON으로 출력해.
값이 없으면 빈 문자열("")로 둬.

1. sermon_title: 설교 제목
2. preacher: 설교자 이름 (직분 포함, 예: 김철수 목사)
3. prayer_person: 대표 기도자 이름
4. bible_ref: 성경 본문 위치 (예: 요한복음 3:16)
5. bible_text: 위 bible_ref에 해당하는 실제 성경 말씀 내용을 '개역개정' 버전으로 찾아서 전체 작성해줘. (인터넷 검색하지 말고 네가 아는 지식으로 정확하게)
6. hymn_list: 찬송가 제목들을 순서대로 리스트에 담아줘. (예: ["찬송가 301장", "은혜"])

마크다운 코드 펜스 없이 순수한 JSON 객체 하나만 출력해.`
}
