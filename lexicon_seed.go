package tone

// SeedEntries returns the built-in monetary-policy lexicon with raw,
// un-normalized weights. A new slice is returned on every call.
func SeedEntries() []LexiconEntry {
	return []LexiconEntry{
		// hawkish
		{Term: "인상", Polarity: Hawkish, Weight: 2.0, Category: "policy", Description: "금리 인상"},
		{Term: "긴축", Polarity: Hawkish, Weight: 2.0, Category: "policy", Description: "긴축 정책"},
		{Term: "정상화", Polarity: Hawkish, Weight: 1.5, Category: "policy", Description: "통화정책 정상화"},
		{Term: "선제적", Polarity: Hawkish, Weight: 1.2, Category: "policy", Description: "선제적 대응"},
		{Term: "물가상승", Polarity: Hawkish, Weight: 1.8, Category: "inflation", Description: "물가 상승 압력"},
		{Term: "상방압력", Polarity: Hawkish, Weight: 1.8, Category: "inflation", Description: "물가 상방 압력"},
		{Term: "상방위험", Polarity: Hawkish, Weight: 1.7, Category: "inflation", Description: "상방 위험"},
		{Term: "상방리스크", Polarity: Hawkish, Weight: 1.7, Category: "inflation", Description: "상방 리스크"},
		{Term: "인플레이션", Polarity: Hawkish, Weight: 1.2, Category: "inflation", Description: "인플레이션 압력"},
		{Term: "기대인플레이션", Polarity: Hawkish, Weight: 1.5, Category: "inflation", Description: "기대인플레이션 상승"},
		{Term: "물가불안", Polarity: Hawkish, Weight: 1.6, Category: "inflation", Description: "물가 불안정"},
		{Term: "물가오름세", Polarity: Hawkish, Weight: 1.5, Category: "inflation", Description: "물가 오름세"},
		{Term: "상승", Polarity: Hawkish, Weight: 1.6, Category: "inflation", Description: "물가·금리 상승"},
		{Term: "과열", Polarity: Hawkish, Weight: 1.8, Category: "growth", Description: "경기 과열"},
		{Term: "견조", Polarity: Hawkish, Weight: 1.3, Category: "growth", Description: "견조한 성장"},
		{Term: "호조", Polarity: Hawkish, Weight: 1.2, Category: "growth", Description: "호조세"},
		{Term: "확대", Polarity: Hawkish, Weight: 0.8, Category: "growth", Description: "확대 기조"},
		{Term: "개선", Polarity: Hawkish, Weight: 0.7, Category: "growth", Description: "경기 개선"},
		{Term: "금융불균형", Polarity: Hawkish, Weight: 2.0, Category: "financial_stability", Description: "금융 불균형"},
		{Term: "가계부채", Polarity: Hawkish, Weight: 1.8, Category: "financial_stability", Description: "가계부채 우려"},
		{Term: "부채증가", Polarity: Hawkish, Weight: 1.7, Category: "financial_stability", Description: "부채 증가"},
		{Term: "부채누증", Polarity: Hawkish, Weight: 1.8, Category: "financial_stability", Description: "부채 누증"},
		{Term: "주택가격", Polarity: Hawkish, Weight: 1.3, Category: "financial_stability", Description: "주택가격 상승"},
		{Term: "부동산", Polarity: Hawkish, Weight: 1.0, Category: "financial_stability", Description: "부동산 가격"},
		{Term: "레버리지", Polarity: Hawkish, Weight: 1.5, Category: "financial_stability", Description: "레버리지 확대"},
		{Term: "자산가격", Polarity: Hawkish, Weight: 1.2, Category: "financial_stability", Description: "자산가격 상승"},
		{Term: "유동성축소", Polarity: Hawkish, Weight: 1.6, Category: "liquidity", Description: "유동성 축소"},
		{Term: "유동성과잉", Polarity: Hawkish, Weight: 1.5, Category: "liquidity", Description: "유동성 과잉"},
		{Term: "완화축소", Polarity: Hawkish, Weight: 1.8, Category: "liquidity", Description: "완화 정도 축소"},
		{Term: "빅스텝", Polarity: Hawkish, Weight: 2.5, Category: "policy", Description: "50bp 인상"},
		{Term: "추가인상", Polarity: Hawkish, Weight: 2.2, Category: "policy", Description: "추가 금리 인상"},
		{Term: "조기정상화", Polarity: Hawkish, Weight: 2.3, Category: "policy", Description: "조기 정상화"},
		{Term: "추가조치", Polarity: Hawkish, Weight: 2.1, Category: "policy", Description: "추가 조치"},
		{Term: "선제적대응", Polarity: Hawkish, Weight: 2.0, Category: "policy", Description: "선제적 대응"},
		{Term: "정상화속도", Polarity: Hawkish, Weight: 1.7, Category: "policy", Description: "정상화 속도"},
		{Term: "긴축기조", Polarity: Hawkish, Weight: 2.0, Category: "policy", Description: "긴축 기조"},
		{Term: "물가목표상회", Polarity: Hawkish, Weight: 2.3, Category: "inflation", Description: "물가 목표 상회"},
		{Term: "기조적물가", Polarity: Hawkish, Weight: 1.9, Category: "inflation", Description: "기조적 물가"},
		{Term: "근원상승", Polarity: Hawkish, Weight: 2.0, Category: "inflation", Description: "근원물가 상승"},
		{Term: "비용전가", Polarity: Hawkish, Weight: 1.8, Category: "inflation", Description: "비용 전가"},
		{Term: "임금상승압력", Polarity: Hawkish, Weight: 2.0, Category: "inflation", Description: "임금 상승 압력"},
		{Term: "물가상방리스크", Polarity: Hawkish, Weight: 2.2, Category: "inflation", Description: "물가 상방 리스크"},
		{Term: "인플레이션고착", Polarity: Hawkish, Weight: 2.3, Category: "inflation", Description: "인플레이션 고착"},
		{Term: "부동산과열", Polarity: Hawkish, Weight: 2.1, Category: "financial_stability", Description: "부동산 과열"},
		{Term: "투기수요", Polarity: Hawkish, Weight: 1.9, Category: "financial_stability", Description: "투기 수요"},
		{Term: "대출급증", Polarity: Hawkish, Weight: 2.0, Category: "financial_stability", Description: "대출 급증"},
		{Term: "신용리스크", Polarity: Hawkish, Weight: 1.9, Category: "financial_stability", Description: "신용 리스크"},
		{Term: "금융안정리스크", Polarity: Hawkish, Weight: 1.8, Category: "financial_stability", Description: "금융안정 리스크"},
		{Term: "자산시장과열", Polarity: Hawkish, Weight: 2.0, Category: "financial_stability", Description: "자산시장 과열"},
		{Term: "가계대출증가", Polarity: Hawkish, Weight: 2.0, Category: "financial_stability", Description: "가계대출 증가"},
		{Term: "환율절하", Polarity: Hawkish, Weight: 1.7, Category: "external", Description: "환율 절하"},
		{Term: "자본유출", Polarity: Hawkish, Weight: 1.8, Category: "external", Description: "자본 유출"},
		{Term: "수입물가상승", Polarity: Hawkish, Weight: 1.8, Category: "external", Description: "수입물가 상승"},
		{Term: "환율상방압력", Polarity: Hawkish, Weight: 1.7, Category: "external", Description: "환율 상방 압력"},
		// dovish
		{Term: "인하", Polarity: Dovish, Weight: 2.0, Category: "policy", Description: "금리 인하"},
		{Term: "완화", Polarity: Dovish, Weight: 1.8, Category: "policy", Description: "완화 기조"},
		{Term: "동결", Polarity: Dovish, Weight: 1.2, Category: "policy", Description: "금리 동결"},
		{Term: "유지", Polarity: Dovish, Weight: 0.8, Category: "policy", Description: "금리 유지"},
		{Term: "지지", Polarity: Dovish, Weight: 1.0, Category: "policy", Description: "경기 지지"},
		{Term: "둔화", Polarity: Dovish, Weight: 1.8, Category: "growth", Description: "경기 둔화"},
		{Term: "부진", Polarity: Dovish, Weight: 1.7, Category: "growth", Description: "경기 부진"},
		{Term: "위축", Polarity: Dovish, Weight: 1.8, Category: "growth", Description: "경기 위축"},
		{Term: "침체", Polarity: Dovish, Weight: 2.0, Category: "growth", Description: "경기 침체"},
		{Term: "하락", Polarity: Dovish, Weight: 1.3, Category: "growth", Description: "성장 하락"},
		{Term: "감소", Polarity: Dovish, Weight: 1.2, Category: "growth", Description: "성장 감소"},
		{Term: "약화", Polarity: Dovish, Weight: 1.5, Category: "growth", Description: "성장세 약화"},
		{Term: "미약", Polarity: Dovish, Weight: 1.4, Category: "growth", Description: "미약한 성장"},
		{Term: "저조", Polarity: Dovish, Weight: 1.4, Category: "growth", Description: "저조한 성장"},
		{Term: "하방위험", Polarity: Dovish, Weight: 1.8, Category: "risk", Description: "하방 위험"},
		{Term: "하방리스크", Polarity: Dovish, Weight: 1.8, Category: "risk", Description: "하방 리스크"},
		{Term: "하방압력", Polarity: Dovish, Weight: 1.7, Category: "risk", Description: "하방 압력"},
		{Term: "하회", Polarity: Dovish, Weight: 1.3, Category: "risk", Description: "목표 하회"},
		{Term: "불확실성", Polarity: Dovish, Weight: 1.5, Category: "risk", Description: "불확실성"},
		{Term: "불확실", Polarity: Dovish, Weight: 1.4, Category: "risk", Description: "불확실"},
		{Term: "리스크", Polarity: Dovish, Weight: 1.0, Category: "risk", Description: "리스크"},
		{Term: "우려", Polarity: Dovish, Weight: 1.2, Category: "risk", Description: "우려"},
		{Term: "변동성", Polarity: Dovish, Weight: 1.1, Category: "risk", Description: "변동성"},
		{Term: "물가안정", Polarity: Dovish, Weight: 1.5, Category: "inflation", Description: "물가 안정"},
		{Term: "안정세", Polarity: Dovish, Weight: 1.3, Category: "inflation", Description: "물가 안정세"},
		{Term: "둔화세", Polarity: Dovish, Weight: 1.4, Category: "inflation", Description: "물가 둔화세"},
		{Term: "수요부진", Polarity: Dovish, Weight: 1.6, Category: "demand", Description: "수요 부진"},
		{Term: "소비부진", Polarity: Dovish, Weight: 1.5, Category: "demand", Description: "소비 부진"},
		{Term: "투자부진", Polarity: Dovish, Weight: 1.5, Category: "demand", Description: "투자 부진"},
		{Term: "수출부진", Polarity: Dovish, Weight: 1.4, Category: "demand", Description: "수출 부진"},
		{Term: "대외불확실성", Polarity: Dovish, Weight: 1.6, Category: "external", Description: "대외 불확실성"},
		{Term: "대외여건", Polarity: Dovish, Weight: 1.0, Category: "external", Description: "대외 여건"},
		{Term: "글로벌불확실성", Polarity: Dovish, Weight: 1.5, Category: "external", Description: "글로벌 불확실성"},
		{Term: "회복지연", Polarity: Dovish, Weight: 1.7, Category: "growth", Description: "회복 지연"},
		{Term: "지연", Polarity: Dovish, Weight: 1.2, Category: "growth", Description: "지연"},
		{Term: "금리인하여지", Polarity: Dovish, Weight: 2.2, Category: "policy", Description: "금리 인하 여지"},
		{Term: "완화기조유지", Polarity: Dovish, Weight: 2.1, Category: "policy", Description: "완화 기조 유지"},
		{Term: "경기부양", Polarity: Dovish, Weight: 2.0, Category: "policy", Description: "경기 부양"},
		{Term: "완화적통화정책", Polarity: Dovish, Weight: 2.0, Category: "policy", Description: "완화적 통화정책"},
		{Term: "정책지원", Polarity: Dovish, Weight: 1.5, Category: "policy", Description: "정책 지원"},
		{Term: "내수부진", Polarity: Dovish, Weight: 2.0, Category: "growth", Description: "내수 부진"},
		{Term: "소비심리위축", Polarity: Dovish, Weight: 2.0, Category: "growth", Description: "소비 심리 위축"},
		{Term: "고용악화", Polarity: Dovish, Weight: 1.9, Category: "growth", Description: "고용 악화"},
		{Term: "투자감소", Polarity: Dovish, Weight: 1.8, Category: "growth", Description: "투자 감소"},
		{Term: "성장둔화", Polarity: Dovish, Weight: 1.9, Category: "growth", Description: "성장 둔화"},
		{Term: "회복더딤", Polarity: Dovish, Weight: 1.8, Category: "growth", Description: "회복 더딤"},
		{Term: "생산감소", Polarity: Dovish, Weight: 1.7, Category: "growth", Description: "생산 감소"},
		{Term: "디플레이션", Polarity: Dovish, Weight: 2.1, Category: "risk", Description: "디플레이션"},
		{Term: "경기하강", Polarity: Dovish, Weight: 2.1, Category: "risk", Description: "경기 하강"},
		{Term: "수출급감", Polarity: Dovish, Weight: 2.0, Category: "risk", Description: "수출 급감"},
		{Term: "경상수지악화", Polarity: Dovish, Weight: 1.9, Category: "risk", Description: "경상수지 악화"},
		{Term: "하방요인", Polarity: Dovish, Weight: 1.7, Category: "risk", Description: "하방 요인"},
		{Term: "침체우려", Polarity: Dovish, Weight: 2.0, Category: "risk", Description: "침체 우려"},
		{Term: "수요위축", Polarity: Dovish, Weight: 1.9, Category: "risk", Description: "수요 위축"},
		{Term: "글로벌경기둔화", Polarity: Dovish, Weight: 2.0, Category: "external", Description: "글로벌 경기 둔화"},
		{Term: "교역감소", Polarity: Dovish, Weight: 1.8, Category: "external", Description: "교역 감소"},
		{Term: "공급망차질", Polarity: Dovish, Weight: 1.8, Category: "external", Description: "공급망 차질"},
		{Term: "통상불확실성", Polarity: Dovish, Weight: 1.8, Category: "external", Description: "통상 불확실성"},
		{Term: "대외수요둔화", Polarity: Dovish, Weight: 1.8, Category: "external", Description: "대외 수요 둔화"},
	}
}

// SeedNGrams returns the built-in compound phrases.
func SeedNGrams() []NGramEntry {
	return []NGramEntry{
		{Words: []string{"물가", "상승", "압력"}, Polarity: Hawkish},
		{Words: []string{"물가", "상방", "압력"}, Polarity: Hawkish},
		{Words: []string{"금융", "불균형", "누증"}, Polarity: Hawkish},
		{Words: []string{"가계", "부채", "증가"}, Polarity: Hawkish},
		{Words: []string{"통화정책", "완화", "정도", "축소"}, Polarity: Hawkish},
		{Words: []string{"주택", "가격", "상승"}, Polarity: Hawkish},
		{Words: []string{"자산", "가격", "상승"}, Polarity: Hawkish},
		{Words: []string{"기대", "인플레이션", "상승"}, Polarity: Hawkish},
		{Words: []string{"수요", "압력", "확대"}, Polarity: Hawkish},
		{Words: []string{"경기", "과열", "우려"}, Polarity: Hawkish},
		{Words: []string{"물가", "목표", "상회"}, Polarity: Hawkish},
		{Words: []string{"금융", "불균형", "확대"}, Polarity: Hawkish},
		{Words: []string{"가계", "대출", "증가"}, Polarity: Hawkish},
		{Words: []string{"선제적", "대응"}, Polarity: Hawkish},
		{Words: []string{"통화정책", "정상화"}, Polarity: Hawkish},
		{Words: []string{"추가", "인상", "필요"}, Polarity: Hawkish},
		{Words: []string{"기조적", "물가", "상승"}, Polarity: Hawkish},
		{Words: []string{"근원", "물가", "상승"}, Polarity: Hawkish},
		{Words: []string{"물가", "상방", "리스크"}, Polarity: Hawkish},
		{Words: []string{"부동산", "과열", "우려"}, Polarity: Hawkish},
		{Words: []string{"주택가격", "상승", "압력"}, Polarity: Hawkish},
		{Words: []string{"대출", "증가세", "확대"}, Polarity: Hawkish},
		{Words: []string{"신용", "리스크", "확대"}, Polarity: Hawkish},
		{Words: []string{"환율", "상승", "압력"}, Polarity: Hawkish},
		{Words: []string{"자본", "유출", "우려"}, Polarity: Hawkish},
		{Words: []string{"정책", "정상화", "속도"}, Polarity: Hawkish},
		{Words: []string{"성장", "경로", "하방", "리스크"}, Polarity: Dovish},
		{Words: []string{"수요", "압력", "약화"}, Polarity: Dovish},
		{Words: []string{"경기", "회복세", "둔화"}, Polarity: Dovish},
		{Words: []string{"대외", "여건", "불확실성"}, Polarity: Dovish},
		{Words: []string{"물가", "안정", "목표", "하회"}, Polarity: Dovish},
		{Words: []string{"소비", "심리", "위축"}, Polarity: Dovish},
		{Words: []string{"투자", "심리", "위축"}, Polarity: Dovish},
		{Words: []string{"수출", "증가세", "둔화"}, Polarity: Dovish},
		{Words: []string{"성장", "모멘텀", "약화"}, Polarity: Dovish},
		{Words: []string{"고용", "상황", "악화"}, Polarity: Dovish},
		{Words: []string{"성장", "하방", "위험"}, Polarity: Dovish},
		{Words: []string{"경기", "회복", "더딘"}, Polarity: Dovish},
		{Words: []string{"물가", "목표", "근접"}, Polarity: Dovish},
		{Words: []string{"완화적", "통화정책"}, Polarity: Dovish},
		{Words: []string{"경기", "하강", "위험"}, Polarity: Dovish},
		{Words: []string{"내수", "회복", "지연"}, Polarity: Dovish},
		{Words: []string{"투자", "감소", "지속"}, Polarity: Dovish},
		{Words: []string{"고용", "둔화", "우려"}, Polarity: Dovish},
		{Words: []string{"수출", "둔화", "흐름"}, Polarity: Dovish},
		{Words: []string{"경상수지", "악화", "우려"}, Polarity: Dovish},
		{Words: []string{"글로벌", "경기", "둔화"}, Polarity: Dovish},
		{Words: []string{"교역", "감소", "압력"}, Polarity: Dovish},
		{Words: []string{"공급망", "차질", "지속"}, Polarity: Dovish},
		{Words: []string{"디플레이션", "압력", "확대"}, Polarity: Dovish},
		{Words: []string{"금리", "인하", "여지"}, Polarity: Dovish},
		{Words: []string{"경기", "부양", "필요"}, Polarity: Dovish},
	}
}
